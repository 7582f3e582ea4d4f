package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson indenta um valor ou um JSON já serializado. É usado apenas em
// logs, então um JSON inválido volta como texto.
func PrettyJson(in any) string {
	value := in
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		value = decoded
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return ""
	}

	return string(out)
}
