package redis

import "github.com/MrSnakeDoc/voyage/internal/domain"

// keyPrefix namespaces every key this service writes.
const keyPrefix = "voyage:"

// RecordKey returns the key holding the JSON document of one record.
func RecordKey(collection, id string) string {
	return keyPrefix + collection + ":" + id
}

// IndexKey returns the key of the per-collection id index (a sorted set
// for newest-first collections, a plain set otherwise).
func IndexKey(collection string) string {
	return keyPrefix + collection + ":index"
}

// SettingsKey returns the fixed key of the singleton settings document.
func SettingsKey() string {
	return keyPrefix + "settings:" + domain.SettingsID
}
