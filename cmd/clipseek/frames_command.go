package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipseek/internal/clip"
	"clipseek/internal/logging"
	"clipseek/internal/transcript"
	"clipseek/internal/youtube"
)

func newFramesCommand(ctx *commandContext) *cobra.Command {
	var (
		srtOut  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "frames <cues.srt>",
		Short: "Build subtitle frames from a pre-timed cue file",
		Long: `Frames converts an externally timed subtitle file into caption frames
without any matching: each cue becomes one frame with the source's own
timing. Use this when the clip window is already known.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.WithComponent(ctx.ensureLogger(), "frames")

			cues, err := transcript.LoadSRT(args[0])
			if err != nil {
				return err
			}

			engine, err := clip.NewEngine(clip.DefaultOptions(), nil)
			if err != nil {
				return err
			}
			result, err := engine.Run(clip.Source{Cues: cues}, clip.CuesQuery(args[0]))
			if err != nil {
				return err
			}
			logger.Info("frames built",
				logging.String(logging.FieldQueryKind, "cues"),
				logging.Int("cue_count", len(cues)),
				logging.Int("frame_count", len(result.Frames)),
			)

			if srtOut != "" {
				if err := clip.SaveSRT(srtOut, result.Frames); err != nil {
					return err
				}
			}
			if jsonOut {
				return writeJSON(cmd, newSearchOutput("", clip.CuesQuery(args[0]), result, srtOut))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d frames spanning %s - %s\n",
				len(result.Frames),
				youtube.FormatClock(result.ClipStart),
				youtube.FormatClock(result.ClipEnd),
			)
			for _, frame := range result.Frames {
				fmt.Fprintf(out, "  %s  %s\n", youtube.FormatClock(frame.Start), frame.Text())
			}
			if srtOut != "" {
				fmt.Fprintf(out, "Wrote %s\n", srtOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&srtOut, "srt", "", "Write frames to this SRT file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit frames as JSON")
	return cmd
}
