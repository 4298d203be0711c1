// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package envcheck

// KeyClass tells whether a missing key fails verification.
type KeyClass string

const (
	ClassRequired KeyClass = "required"
	ClassOptional KeyClass = "optional"
)

// String returns the string representation
func (c KeyClass) String() string {
	return string(c)
}

// KeySpec names a configuration key and its class.
type KeySpec struct {
	Name  string
	Class KeyClass
}

// Required keys.
const (
	KeyFirebaseAPIKey            = "VITE_FIREBASE_API_KEY"
	KeyFirebaseAuthDomain        = "VITE_FIREBASE_AUTH_DOMAIN"
	KeyFirebaseProjectID         = "VITE_FIREBASE_PROJECT_ID"
	KeyFirebaseStorageBucket     = "VITE_FIREBASE_STORAGE_BUCKET"
	KeyFirebaseMessagingSenderID = "VITE_FIREBASE_MESSAGING_SENDER_ID"
	KeyFirebaseAppID             = "VITE_FIREBASE_APP_ID"
	KeyR2WorkerURL               = "VITE_R2_WORKER_URL"
)

// Optional keys.
const (
	KeyStripePublishableKey  = "VITE_STRIPE_PUBLISHABLE_KEY"
	KeyStripePricePro        = "VITE_STRIPE_PRICE_PRO"
	KeyStripePriceUnlimited  = "VITE_STRIPE_PRICE_UNLIMITED"
	KeyFirebaseMeasurementID = "VITE_FIREBASE_MEASUREMENT_ID"
)

// RequiredKeys lists the required keys in report order.
var RequiredKeys = []string{
	KeyFirebaseAPIKey,
	KeyFirebaseAuthDomain,
	KeyFirebaseProjectID,
	KeyFirebaseStorageBucket,
	KeyFirebaseMessagingSenderID,
	KeyFirebaseAppID,
	KeyR2WorkerURL,
}

// OptionalKeys lists the optional keys in report order.
var OptionalKeys = []string{
	KeyStripePublishableKey,
	KeyStripePricePro,
	KeyStripePriceUnlimited,
	KeyFirebaseMeasurementID,
}

// KeySet is an ordered list of key specs, required keys first.
type KeySet []KeySpec

// DefaultKeySet returns the compiled-in key set.
func DefaultKeySet() KeySet {
	set := make(KeySet, 0, len(RequiredKeys)+len(OptionalKeys))
	for _, name := range RequiredKeys {
		set = append(set, KeySpec{Name: name, Class: ClassRequired})
	}
	for _, name := range OptionalKeys {
		set = append(set, KeySpec{Name: name, Class: ClassOptional})
	}
	return set
}

// Class returns the specs of the given class in declaration order.
func (s KeySet) Class(class KeyClass) []KeySpec {
	out := make([]KeySpec, 0, len(s))
	for _, spec := range s {
		if spec.Class == class {
			out = append(out, spec)
		}
	}
	return out
}
