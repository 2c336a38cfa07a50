package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VersionTag is inserted between a file's base name and its version number.
const VersionTag = "versão"

// ResolveOutputPath returns desired when nothing exists there. Otherwise it
// returns the first free "<base>_versão_NN<ext>" path, counting from 02.
//
// Two writers racing on the same base path can settle on the same version;
// callers are expected to run one at a time.
func ResolveOutputPath(desired string) (string, error) {
	free, err := isFree(desired)
	if err != nil {
		return "", err
	}
	if free {
		return desired, nil
	}

	ext := filepath.Ext(desired)
	base := strings.TrimSuffix(desired, ext)

	for version := 2; ; version++ {
		candidate := fmt.Sprintf("%s_%s_%02d%s", base, VersionTag, version, ext)
		free, err := isFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func isFree(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}
