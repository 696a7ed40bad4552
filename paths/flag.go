package paths

import (
	"flag"
)

// SetupFilePathFlag registers a string flag named flagName whose
// default is the Find result for fileName, so binaries start with a
// working path whenever the data file is somewhere discoverable. The
// flag defaults to an empty string when the file is nowhere to be
// found.
func SetupFilePathFlag(fileName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Find(fileName), "Path to "+fileName)
}
