// Package constants holds identifiers shared by configuration and wiring.
package constants

// Storage keys of the feature collections. All keys use the same underscored
// hive_ scheme.
const (
	KeyRoommates    = "hive_roommates"
	KeyUserProfile  = "hive_user_profile"
	KeyCartItems    = "hive_cart_items"
	KeyRentItems    = "hive_rent_items"
	KeyAutoShares   = "hive_auto_shares"
	KeyGamePartners = "hive_game_partners"
	KeyActivity     = "hive_activity"
)

// CollectionKeys lists the shared collections that can be reset to defaults.
var CollectionKeys = []string{KeyRoommates, KeyCartItems, KeyRentItems, KeyAutoShares, KeyGamePartners}

// UserProfileKey is the key of a member's roommate seeker profile.
func UserProfileKey(userID string) string {
	return KeyUserProfile + ":" + userID
}

// EnvDevelop relaxes the push token check of the worker.
const EnvDevelop = "develop"

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// Mail providers.
const (
	MailProviderLog      = "log"
	MailProviderSendGrid = "sendgrid"
)
