package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan   bool
	Judge  bool
	Gear   bool
	Config bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("SCHEMATIC_DEBUG_SCAN")
	d.Judge = boolEnv("SCHEMATIC_DEBUG_JUDGE")
	d.Gear = boolEnv("SCHEMATIC_DEBUG_GEAR")
	d.Config = boolEnv("SCHEMATIC_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Judge() bool {
	return d.Judge
}
func Gear() bool {
	return d.Gear
}
func Config() bool {
	return d.Config
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", args[i])
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
