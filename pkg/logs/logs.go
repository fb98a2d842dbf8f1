package logs

import (
	"fmt"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/component-base/featuregate"
	"k8s.io/component-base/logs"
	logsapi "k8s.io/component-base/logs/api/v1"
	"k8s.io/klog/v2"

	_ "k8s.io/component-base/logs/json/register"
)

// irsa-jwks follows the Kubernetes logging conventions and writes logs in the
// Kubernetes text format by default, or JSON with --logging-format=json.
//
// All log output goes to stderr. Stdout is reserved for the JWKS document so
// that the output of `irsa-jwks generate` can be redirected straight into the
// file that gets published. For that reason the split-stream options of
// k8s.io/component-base are left disabled and hidden.
//
// Further reading:
//  - [Kubernetes logging conventions](https://github.com/kubernetes/community/blob/master/contributors/devel/sig-instrumentation/logging.md)
//  - [Examples of using k8s.io/component-base/logs](https://github.com/kubernetes/kubernetes/tree/master/staging/src/k8s.io/component-base/logs/example)

var (
	visibleFlagNames = sets.New[string]("v", "vmodule", "logging-format")
	// Updated from the logging flags, including the hidden ones.
	configuration = logsapi.NewLoggingConfiguration()
	features      = featuregate.NewFeatureGate()
)

const (
	// Standard log verbosity levels.
	// Use these instead of integers in irsa-jwks code.
	Info  = 0
	Debug = 1
	Trace = 2
)

func init() {
	runtime.Must(logsapi.AddFeatureGates(features))
}

// AddFlags adds log related flags to the supplied flag set. Only --log-level
// (-v), --vmodule and --logging-format are visible.
func AddFlags(fs *pflag.FlagSet) {
	var tfs pflag.FlagSet
	logsapi.AddFlags(configuration, &tfs)
	features.AddFlag(&tfs)
	tfs.VisitAll(func(f *pflag.Flag) {
		if !visibleFlagNames.Has(f.Name) {
			_ = tfs.MarkHidden(f.Name)
		}

		if f.Name == "logging-format" {
			f.Usage = `Sets the log format. Permitted formats: "json", "text".`
		}

		// --log-level is the conventional spelling, -v stays as shorthand.
		if f.Name == "v" {
			f.Name = "log-level"
			f.Shorthand = "v"
			f.Usage = fmt.Sprintf("%s. 0=Info, 1=Debug, 2=Trace. (default: 0)", f.Usage)
		}
	})
	fs.AddFlagSet(&tfs)
}

// Initialize configures the global klog, slog and log loggers from the
// logging flags. All three write in the same format to stderr, since
// logs.InitLogs routes the standard library logger and slog through klog.
func Initialize() error {
	logs.InitLogs()
	if err := logsapi.ValidateAndApply(configuration, features); err != nil {
		return fmt.Errorf("Error in logging configuration: %s", err)
	}

	klog.V(Trace).InfoS("Logging initialized", "format", configuration.Format, "verbosity", configuration.Verbosity)
	return nil
}
