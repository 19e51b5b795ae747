package config

// mergeConfigs overlays a project config onto the global one. Neither
// input is modified; zero-value fields in override keep the base value.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}

	result.TUI = mergeTUI(result.TUI, override.TUI)
	result.Watch = mergeWatch(result.Watch, override.Watch)

	if override.Follow != nil {
		if result.Follow == nil {
			result.Follow = override.Follow
		} else if override.Follow.Addr != "" {
			merged := *result.Follow
			merged.Addr = override.Follow.Addr
			result.Follow = &merged
		}
	}

	result.Extensions = mergeExtensions(result.Extensions, override.Extensions)

	return &result
}

// mergeExtensions overlays override extension entries onto base without
// touching either input. When both sides hold a map under the same key
// the maps are merged one level deep; any other collision replaces.
func mergeExtensions(base, override map[string]interface{}) map[string]interface{} {
	if len(override) == 0 {
		return base
	}
	merged := overlayStringMap(base, nil)
	for key, value := range override {
		overrideMap, ok := value.(map[string]interface{})
		if !ok {
			merged[key] = value
			continue
		}
		if baseMap, ok := merged[key].(map[string]interface{}); ok {
			merged[key] = overlayStringMap(baseMap, overrideMap)
			continue
		}
		merged[key] = value
	}
	return merged
}

// overlayStringMap copies base and writes override entries on top.
func overlayStringMap(base, override map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func mergeTUI(base, override *TUIConfig) *TUIConfig {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}

	result := *base
	if override.Preset != "" {
		result.Preset = override.Preset
	}
	if override.Icons != "" {
		result.Icons = override.Icons
	}
	if len(override.Keybindings) > 0 {
		merged := make(map[string][]string, len(result.Keybindings)+len(override.Keybindings))
		for k, v := range result.Keybindings {
			merged[k] = v
		}
		for k, v := range override.Keybindings {
			merged[k] = v
		}
		result.Keybindings = merged
	}
	return &result
}

func mergeWatch(base, override *WatchConfig) *WatchConfig {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}

	result := *base
	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.DebounceMs != 0 {
		result.DebounceMs = override.DebounceMs
	}
	if len(override.Ignore) > 0 {
		result.Ignore = override.Ignore
	}
	return &result
}
