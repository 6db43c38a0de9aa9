package runtime

import (
	"errors"
	"os"
)

type Mode int

const (
	ModeDev Mode = iota
	ModeProd
)

const DevEnv = "BANNER_DEV"

var (
	ErrAssetsFSRequired = errors.New("assets filesystem is required")
	ErrRenderFailed     = errors.New("banner render failed")
)

func GetMode() Mode {
	if os.Getenv(DevEnv) == "1" {
		return ModeDev
	}
	return ModeProd
}

func IsDev() bool {
	return GetMode() == ModeDev
}
