package console

import "github.com/rileyhilliard/raspimon/internal/query"

type menuEntry struct {
	key   string
	label string
	note  string
}

// menu is the fixed key and label for each kind.
var menu = map[query.Kind]menuEntry{
	query.KindTemperature: {"a", "Temperature", ""},
	query.KindCPU:         {"b", "CPU load", ""},
	query.KindDisk:        {"c", "Disk info", ""},
	query.KindNetwork:     {"d", "Network info", ""},
	query.KindSessions:    {"e", "Devices connected via SSH", ""},
	query.KindGPIO:        {"f", "GPIO status", "(unavailable)"},
	query.KindConfig:      {"g", "Raspberry Pi config menu", "(needs sudo)"},
}

// DefaultOptions assigns each query its menu key and label, keeping the
// order of queries. Queries of an unknown kind are skipped.
func DefaultOptions(queries []query.Query) []Option {
	options := make([]Option, 0, len(queries))
	for _, q := range queries {
		item, ok := menu[q.Kind()]
		if !ok {
			continue
		}
		options = append(options, Option{
			Key:   item.key,
			Label: item.label,
			Note:  item.note,
			Query: q,
		})
	}
	return options
}
