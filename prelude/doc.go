// Package prelude gathers the helpers small programs reach for first:
// process and path utilities, regular expressions, clocks and calendar
// dates, a few generic containers and a ready-to-use logger.
//
// A script needs a single import:
//
//	import . "github.com/philipp01105/quicklog/prelude"
//
//	func main() {
//		Log.Infof("cwd=%s", Must(Getwd()))
//		c := NewCounter[string]()
//		c.Add("a", 10)
//		Log.Debug("counter", Any("c", c.Map()))
//	}
//
// Log is a deferred logger. Nothing is configured until it is first used;
// at that point the root registry receives the default program-tagged
// console handler, unless a handler was attached beforehand.
package prelude
