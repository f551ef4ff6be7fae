package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chippy8vm/chippy8/internal/audio"
	"github.com/chippy8vm/chippy8/internal/chip8"
	"github.com/chippy8vm/chippy8/internal/keyboard"
	"github.com/chippy8vm/chippy8/internal/video"
)

var (
	flagCPUHz     int
	flagVidScale  int
	flagAudioFreq int
	flagAmpl      int
	flagVerbose   bool
	flagOriginal  bool
)

// runCmd runs the chippy virtual machine against the given ROM until the
// keyboard adapter signals quit or the VM hits an unrecoverable fault.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().IntVar(&flagCPUHz, "cpufreq", chip8.DefaultCPUHz, "CPU clock frequency in Hz")
	runCmd.Flags().IntVar(&flagVidScale, "vidscale", 10, "pixels per CHIP-8 pixel")
	runCmd.Flags().IntVar(&flagAudioFreq, "audiofreq", 440, "tone frequency in Hz for the sound timer gate")
	runCmd.Flags().IntVar(&flagAmpl, "ampl", 20000, "tone amplitude")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	runCmd.Flags().BoolVar(&flagOriginal, "original", false, "select the ORIGINAL_IMPL (Cowgod) dialect")
}

func runChippy(cmd *cobra.Command, args []string) {
	romPath := args[0]

	rom, err := chip8.LoadROMFile(romPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		switch {
		case errors.Is(err, chip8.ErrROMNotFound):
			os.Exit(chip8.ExitROMNotFound)
		case errors.Is(err, chip8.ErrROMTooLarge):
			os.Exit(chip8.ExitROMTooLarge)
		default:
			os.Exit(chip8.ExitUsage)
		}
		return
	}

	vm := chip8.New(chip8.Options{Original: flagOriginal, Verbose: flagVerbose})
	if err := vm.LoadROM(rom); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(chip8.ExitROMTooLarge)
		return
	}

	win, err := video.NewWindow("chippy", flagVidScale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(chip8.ExitHostInitFailed)
		return
	}

	videoAdapter := video.New(win, flagVidScale)
	keyboardAdapter := keyboard.New(win)

	audioAdapter, err := audio.New(flagAudioFreq, flagAmpl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(chip8.ExitHostInitFailed)
		return
	}

	loop := chip8.NewLoop(vm, videoAdapter, audioAdapter, keyboardAdapter, nil, chip8.LoopConfig{
		CPUHz:   flagCPUHz,
		Verbose: flagVerbose,
	})

	os.Exit(loop.Run())
}
