package formkit

import (
	"time"

	"github.com/dmitrymomot/formkit/pkg/httpserver"
)

// Config is loaded from the environment with config.Load.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"formkit"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	// LogLevel overrides the level implied by Env when set.
	LogLevel string `env:"LOG_LEVEL"`

	// FormSchema is an optional path to a YAML field schema.
	FormSchema      string `env:"FORM_SCHEMA"`
	ErrorSlotPrefix string `env:"ERROR_SLOT_PREFIX" envDefault:"error_"`

	FlashSecret      string        `env:"FLASH_SECRET,required,notEmpty"`
	FlashContainerID string        `env:"FLASH_CONTAINER_ID" envDefault:"flash-container"`
	FlashDelay       time.Duration `env:"FLASH_DELAY" envDefault:"4s"`
	FlashFade        time.Duration `env:"FLASH_FADE" envDefault:"500ms"`

	HTTP httpserver.Config
}
