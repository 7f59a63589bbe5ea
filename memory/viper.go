package memory

import (
	"github.com/spf13/viper"
)

// keys are shared with the xdump command line config
func viperKey(key string) string {
	return "xdump." + key
}

func ViperGetBool(key string) bool {
	return viper.GetBool(viperKey(key))
}
