package opts

import (
	"github.com/walteh/scaffrc/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	UserLogger *log.UserLogger
}
