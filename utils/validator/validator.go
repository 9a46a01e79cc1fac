package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init builds the validator singleton. Safe to call more than once.
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
	})
}

// ValidateStruct checks the request struct against its validate tags.
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}
