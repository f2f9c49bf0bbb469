// Command pitchshift renders a WAV file through the audio mods.
//
// Usage:
//
//	pitchshift [flags] input.wav
//
// Examples:
//
//	pitchshift -pitch 3 song.wav
//	pitchshift -pitch -12 -o low.wav song.wav
//	pitchshift -mods NC -set NC.speed_change=1.3 song.wav
//	pitchshift -analyze -pitch 7 tone.wav
//	pitchshift -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-mods/audio/playback"
	"github.com/cwbudde/algo-mods/dsp/analysis"
	"github.com/cwbudde/algo-mods/dsp/core"
	"github.com/cwbudde/algo-mods/mods"
)

// settingFlags collects repeated -set ACRONYM.key=value arguments.
type settingFlags map[string]map[string]float64

func (s settingFlags) String() string { return "" }

func (s settingFlags) Set(arg string) error {
	target, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("expected ACRONYM.key=value, got %q", arg)
	}
	acronym, key, ok := strings.Cut(target, ".")
	if !ok || acronym == "" || key == "" {
		return fmt.Errorf("expected ACRONYM.key=value, got %q", arg)
	}
	acronym = strings.ToUpper(acronym)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", target, err)
	}
	if s[acronym] == nil {
		s[acronym] = map[string]float64{}
	}
	s[acronym][key] = v
	return nil
}

type options struct {
	input    string
	output   string
	pitch    float64
	pitchSet bool
	mods     string
	settings settingFlags
	analyze  bool
}

func main() {
	opts := options{settings: settingFlags{}}

	pitch := flag.Float64("pitch", 0, "pitch shift in semitones, applied to the PS mod (clamped to [-12, 12])")
	modList := flag.String("mods", mods.AcronymPitchShift, "comma-separated mod acronyms to apply")
	output := flag.String("o", "", "output WAV path (default: <input>_<mods>.wav)")
	analyze := flag.Bool("analyze", false, "print the dominant frequency before and after rendering")
	list := flag.Bool("list", false, "list available mods and their settings")
	flag.Var(opts.settings, "set", "mod setting as ACRONYM.key=value (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pitchshift [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Renders a WAV file with pitch and rate mods applied.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	registry := mods.DefaultRegistry()

	if *list {
		printMods(registry)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts.input = flag.Arg(0)
	opts.output = *output
	opts.pitch = *pitch
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "pitch" {
			opts.pitchSet = true
		}
	})
	opts.mods = *modList
	opts.analyze = *analyze

	if err := run(registry, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pitchshift: %v\n", err)
		os.Exit(1)
	}
}

func run(registry *mods.Registry, opts options) error {
	selection, err := buildMods(registry, opts)
	if err != nil {
		return err
	}

	in, err := readWav(opts.input)
	if err != nil {
		return err
	}

	track, err := playback.NewTrack(in.channels, core.WithSampleRate(in.sampleRate))
	if err != nil {
		return err
	}
	mods.ApplyToTrack(track, selection...)

	start := time.Now()
	rendered, err := track.Render()
	if err != nil {
		return err
	}

	if opts.output == "" {
		opts.output = defaultOutputPath(opts.input, selection)
	}
	if err := writeWav(opts.output, in.withChannels(rendered)); err != nil {
		return err
	}

	rates := track.Rates()
	fmt.Fprintf(os.Stderr, "%s -> %s: frequency x%.4f, tempo x%.4f, %v -> %v (%v)\n",
		opts.input, opts.output, rates.Frequency, rates.Tempo,
		track.Duration().Round(time.Millisecond), track.RenderedDuration().Round(time.Millisecond),
		time.Since(start).Round(time.Millisecond))

	if opts.analyze {
		return report(in.channels[0], rendered[0], in.sampleRate)
	}
	return nil
}

// buildMods creates the selected mods, validates the combination and
// applies settings.
func buildMods(registry *mods.Registry, opts options) ([]mods.Mod, error) {
	var selection []mods.Mod
	for _, acronym := range strings.Split(opts.mods, ",") {
		acronym = strings.ToUpper(strings.TrimSpace(acronym))
		if acronym == "" {
			continue
		}
		m, err := registry.Create(acronym)
		if err != nil {
			return nil, err
		}
		selection = append(selection, m)
	}

	if err := mods.Validate(selection...); err != nil {
		return nil, err
	}

	if opts.pitchSet && !selected(selection, mods.AcronymPitchShift) {
		return nil, fmt.Errorf("-pitch given but %s is not selected", mods.AcronymPitchShift)
	}

	for acronym := range opts.settings {
		if !selected(selection, acronym) {
			return nil, fmt.Errorf("setting given for %s, which is not selected", acronym)
		}
	}

	for _, m := range selection {
		values := opts.settings[m.Acronym()]
		if m.Acronym() == mods.AcronymPitchShift {
			if values == nil {
				values = map[string]float64{}
			}
			if _, explicit := values[mods.PitchSettingKey]; !explicit {
				values[mods.PitchSettingKey] = opts.pitch
			}
		}
		if err := mods.Configure(m, values); err != nil {
			return nil, err
		}
	}

	return selection, nil
}

func selected(selection []mods.Mod, acronym string) bool {
	for _, m := range selection {
		if m.Acronym() == acronym {
			return true
		}
	}
	return false
}

func report(before, after []float64, sampleRate float64) error {
	f0, err := analysis.DominantFrequency(before, sampleRate)
	if err != nil {
		if errors.Is(err, analysis.ErrSilent) || errors.Is(err, analysis.ErrTooShort) {
			fmt.Fprintf(os.Stderr, "analysis skipped: %v\n", err)
			return nil
		}
		return err
	}
	f1, err := analysis.DominantFrequency(after, sampleRate)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.2f Hz -> %.2f Hz (%+.2f semitones)\n",
		f0, f1, analysis.ShiftSemitones(f0, f1))
	return nil
}

func defaultOutputPath(input string, selection []mods.Mod) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	tags := make([]string, 0, len(selection))
	for _, m := range selection {
		tags = append(tags, strings.ToLower(m.Acronym()))
	}
	if len(tags) == 0 {
		tags = append(tags, "copy")
	}
	return base + "_" + strings.Join(tags, "_") + ".wav"
}

func printMods(registry *mods.Registry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACRONYM\tNAME\tTYPE\tINCOMPATIBLE\tSETTINGS")
	for _, acronym := range registry.Acronyms() {
		m, err := registry.Create(acronym)
		if err != nil {
			continue
		}
		var settings []string
		if c, ok := m.(mods.Configurable); ok {
			for _, s := range c.Settings() {
				settings = append(settings, s.String())
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Acronym(), m.Name(), m.Type(),
			strings.Join(m.IncompatibleMods(), ","), strings.Join(settings, "; "))
	}
	w.Flush()
}
