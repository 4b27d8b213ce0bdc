package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/arabicforms"
	"github.com/npillmayer/arabicforms/textfile"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'arabicforms'
func tracer() tracing.Trace {
	return tracing.Select("arabicforms")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.arabicforms": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	input := flag.String("i", "", "Input: a string, or a path to a UTF-8 text file")
	output := flag.String("o", "", "Path of the output file (default: print the result)")
	decontext := flag.Bool("d", false, "Decontextualize instead of contextualize")
	normalize := flag.Bool("n", false, "Normalize composite characters before converting")
	spaces := flag.Bool("spaces", false, "Re-insert lost spaces after word-final letter shapes (with -d)")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	if *input == "" {
		pterm.Error.Println("No input provided. Please use the -i parameter.")
		flag.Usage()
		os.Exit(2)
	}

	if isFile(*input) {
		convertFile(*input, *output, *decontext, *normalize, *spaces)
		return
	}
	result := convertString(*input, *decontext, *normalize, *spaces)
	if *output == "" {
		fmt.Println(result)
		return
	}
	if err := os.WriteFile(*output, []byte(result), 0644); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	pterm.Info.Printf("Result written to %s\n", *output)
}

func convertString(text string, decontext, normalize, spaces bool) string {
	if decontext {
		if spaces {
			text = arabicforms.RestoreSpaces(text)
		}
		text = arabicforms.Decontextualize(text)
		if normalize {
			text = arabicforms.RecomposeNFC(text)
		}
		return text
	}
	if normalize {
		text = arabicforms.NormalizeComposites(text)
	}
	return arabicforms.Contextualize(text)
}

func convertFile(src, dst string, decontext, normalize, spaces bool) {
	if dst == "" {
		data, err := os.ReadFile(src)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		fmt.Println(convertString(string(data), decontext, normalize, spaces))
		return
	}
	var opts []textfile.Option
	if normalize {
		opts = append(opts, textfile.WithNormalization())
	}
	if spaces {
		opts = append(opts, textfile.WithSpaceRepair())
	}
	var err error
	if decontext {
		err = textfile.DecontextualizeFile(src, dst, opts...)
	} else {
		err = textfile.ContextualizeFile(src, dst, opts...)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	pterm.Info.Printf("Result written to %s\n", dst)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
