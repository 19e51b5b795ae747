package follow

// followerPage is served at /. It mirrors the presenter through /ws
// and reconnects on its own, so a follower tab survives presenter
// restarts. The palette matches the default terminal theme.
const followerPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>lectern</title>
<style>
  body {
    margin: 0;
    font-family: -apple-system, "Segoe UI", "Helvetica Neue", sans-serif;
    background: #181820;
    color: #DCD7BA;
    line-height: 1.6;
  }
  main {
    max-width: 46rem;
    margin: 0 auto;
    padding: 3.5rem 1.5rem 5rem;
  }
  h1 { color: #FFA066; }
  h2 { color: #957FB8; }
  a  { color: #7FB4CA; }
  pre {
    background: #1F1F28;
    border: 1px solid #363646;
    border-radius: 6px;
    padding: 0.75rem 1rem;
    overflow-x: auto;
  }
  code { font-family: "SF Mono", Menlo, Consolas, monospace; font-size: 0.925em; }
  blockquote { border-left: 3px solid #363646; margin-left: 0; padding-left: 1rem; color: #727169; }
  footer {
    position: fixed;
    bottom: 0; left: 0; right: 0;
    display: flex;
    justify-content: space-between;
    padding: 0.7rem 1.5rem;
    background: #1F1F28;
    border-top: 1px solid #363646;
    color: #727169;
    font-size: 0.875rem;
  }
  footer .counter { color: #DCD7BA; font-weight: 600; }
  .waiting { color: #727169; text-align: center; margin-top: 22vh; }
</style>
</head>
<body>
<main id="slide"><p class="waiting">Waiting for the presenter&hellip;</p></main>
<footer><span id="title"></span><span id="counter" class="counter"></span></footer>
<script>
  var slide = document.getElementById("slide");
  var title = document.getElementById("title");
  var counter = document.getElementById("counter");

  function apply(u) {
    title.textContent = u.title || "";
    counter.textContent = u.counter || "";
    if (u.type === "slide" && u.html) {
      slide.innerHTML = u.html;
    } else if (u.type === "docs") {
      slide.innerHTML = '<p class="waiting">The presenter is browsing the document&hellip;</p>';
    }
    if (u.fragment) {
      history.replaceState(null, "", "#" + u.fragment);
    } else {
      history.replaceState(null, "", location.pathname);
    }
  }

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onmessage = function (ev) {
      // A frame may coalesce several updates, newline separated.
      // Each is a full snapshot, so only the newest matters.
      var lines = ev.data.trim().split("\n");
      apply(JSON.parse(lines[lines.length - 1]));
    };
    ws.onclose = function () {
      setTimeout(connect, 1000);
    };
  }
  connect();
</script>
</body>
</html>
`
