package checkpointer

import "fmt"

// FilenameEnumerator returns a function which returns the filenames
// prefix-1.ext, prefix-2.ext, ... on consecutive calls. The prefix
// should include the directory to save in.
func FilenameEnumerator(prefix, extension string) func() string {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("%v-%d%v", prefix, i, extension)
	}
}
