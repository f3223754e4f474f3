package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// This automatically stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = exampleValue(field.Type, jsonName)
	}

	return example
}

// exampleValue picks a plausible value for a settings field
func exampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return fieldName == "debug" || fieldName == "alarms"
	case reflect.Int:
		switch fieldName {
		case "max_log_files":
			return 1000
		case "poll_interval_seconds":
			return DefaultPollIntervalSeconds
		case "ssh_port":
			return DefaultSSHPort
		}
		return 10
	case reflect.String:
		switch fieldName {
		case "api_url":
			return DefaultAPIURL
		case "metrics_addr":
			return "127.0.0.1:9464"
		case "ssh_host":
			return DefaultSSHHost
		}
		return "example"
	}
	return nil
}
