// Package autoload initializes the global logger from the environment as a
// blank-import side effect.
package autoload

import (
	"github.com/kelseyhightower/envconfig"

	logx "github.com/natthawee/shopflow/pkg/logger"
)

func init() {
	conf := *logx.DefaultConfig
	_ = envconfig.Process("LOG", &conf)
	logx.Init(conf)
}
