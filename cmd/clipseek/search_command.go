package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"clipseek/internal/clip"
	"clipseek/internal/config"
	"clipseek/internal/logging"
	"clipseek/internal/match"
	"clipseek/internal/services/assemblyai"
	"clipseek/internal/store"
	"clipseek/internal/transcript"
	"clipseek/internal/youtube"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		phrase         string
		text           string
		transcriptPath string
		audioPath      string
		srtOut         string
		threshold      int
		windowSize     int
		clipDuration   int
		jsonOut        bool
		noCache        bool
	)

	cmd := &cobra.Command{
		Use:   "search <video-url>",
		Short: "Find a phrase or text passage in a video transcript",
		Long: `Search locates a phrase (--phrase, up to five words) or a longer passage
(--text, matched by its first and last words) inside the video's transcript
and reports the matching clip window with a timestamped link.

The transcript comes from the cache, a local transcript JSON file
(--transcript), or the transcription provider when an audio file is supplied
(--audio). Acquiring the audio itself is left to external tooling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.WithComponent(ctx.ensureLogger(), "search")

			videoID, err := youtube.VideoID(args[0])
			if err != nil {
				return err
			}

			var query clip.Query
			if phrase != "" {
				query = clip.PhraseQuery(phrase)
			} else {
				query = clip.TextQuery(text)
			}

			opts := clip.Options{
				Threshold:    cfg.Search.Threshold,
				WindowSize:   cfg.Search.WindowSize,
				ClipDuration: cfg.Search.ClipDuration,
			}
			if cmd.Flags().Changed("threshold") {
				opts.Threshold = threshold
			}
			if cmd.Flags().Changed("window-size") {
				opts.WindowSize = windowSize
			}
			if cmd.Flags().Changed("clip-duration") {
				opts.ClipDuration = clipDuration
			}

			engine, err := clip.NewEngine(opts, nil)
			if err != nil {
				return err
			}

			words, err := acquireWords(cmd.Context(), ctx, cfg, logger, videoID, transcriptPath, audioPath, noCache)
			if err != nil {
				return err
			}
			logger.Info("transcript ready",
				logging.String(logging.FieldVideoID, videoID),
				logging.Int("word_count", len(words)),
			)

			result, err := engine.Run(clip.Source{VideoID: videoID, Words: words}, query)
			if err != nil {
				return reportSearchFailure(cmd, err, opts.Threshold)
			}
			logger.Info("match resolved",
				logging.String(logging.FieldVideoID, videoID),
				logging.String(logging.FieldQueryKind, query.Kind().String()),
				logging.Int(logging.FieldScore, result.Match.Score),
				logging.Duration("start", result.Match.Start),
				logging.Duration("end", result.Match.End),
			)

			if srtOut != "" {
				if err := clip.SaveSRT(srtOut, result.Frames); err != nil {
					return err
				}
			}
			if jsonOut {
				return writeJSON(cmd, newSearchOutput(videoID, query, result, srtOut))
			}
			renderSearchResult(cmd, query, result, srtOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&phrase, "phrase", "p", "", "Short phrase to search for (max 5 words)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Full text to search for (matched by start/end anchors)")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "Local transcript JSON file (provider or whisper shape)")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Audio file to transcribe when no cached transcript exists")
	cmd.Flags().StringVar(&srtOut, "srt", "", "Write subtitle frames to this SRT file")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Minimum similarity score 0-100 (default from config)")
	cmd.Flags().IntVar(&windowSize, "window-size", 0, "Words per subtitle frame (default from config)")
	cmd.Flags().IntVar(&clipDuration, "clip-duration", 0, "Clip length cap in seconds, 0 disables (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the transcript cache")
	cmd.MarkFlagsMutuallyExclusive("phrase", "text")
	cmd.MarkFlagsOneRequired("phrase", "text")

	return cmd
}

// acquireWords resolves the transcript word sequence: an explicit local file
// wins, then the cache, then a provider transcription of the supplied audio.
func acquireWords(ctx context.Context, cmdCtx *commandContext, cfg *config.Config, logger *slog.Logger, videoID, transcriptPath, audioPath string, noCache bool) ([]transcript.Word, error) {
	if transcriptPath != "" {
		t, err := transcript.LoadFile(transcriptPath)
		if err != nil {
			return nil, err
		}
		return t.Words, nil
	}

	var words []transcript.Word
	err := cmdCtx.withStore(func(st *store.Store) error {
		if !noCache {
			cached, ok, err := st.Get(ctx, videoID)
			if err != nil {
				return err
			}
			if ok {
				logger.Info("transcript cache hit", logging.String(logging.FieldVideoID, videoID))
				words = cached
				return nil
			}
		}
		if audioPath == "" {
			return fmt.Errorf("no cached transcript for %s: supply --transcript or --audio", videoID)
		}
		client, err := assemblyai.New(assemblyai.Config{
			APIKey:       cfg.AssemblyAI.APIKey,
			BaseURL:      cfg.AssemblyAI.BaseURL,
			PollInterval: time.Duration(cfg.AssemblyAI.PollIntervalSeconds) * time.Second,
		}, logger)
		if err != nil {
			return err
		}
		t, err := client.Transcribe(ctx, audioPath)
		if err != nil {
			return err
		}
		if err := st.Save(ctx, videoID, t.Words); err != nil {
			logger.Warn("transcript cache save failed",
				logging.String(logging.FieldVideoID, videoID),
				logging.Error(err),
			)
		}
		words = t.Words
		return nil
	})
	return words, err
}

// reportSearchFailure turns the recoverable match outcomes into user-facing
// messages. Malformed input and structural errors stay errors.
func reportSearchFailure(cmd *cobra.Command, err error, threshold int) error {
	out := cmd.OutOrStdout()
	switch {
	case errors.Is(err, match.ErrOrderingViolation):
		fmt.Fprintln(out, "No matching segment: the passage's end was only found before its start.")
		fmt.Fprintln(out, "Try lowering --threshold or shortening the text.")
		return nil
	case errors.Is(err, match.ErrNoMatch):
		var noMatch *match.NoMatchError
		if errors.As(err, &noMatch) && noMatch.BestScore > 0 {
			fmt.Fprintf(out, "No match found: best window scored %d, below threshold %d.\n", noMatch.BestScore, threshold)
		} else {
			fmt.Fprintln(out, "No match found.")
		}
		return nil
	default:
		return err
	}
}

func renderSearchResult(cmd *cobra.Command, query clip.Query, result *clip.Result, srtOut string) {
	out := cmd.OutOrStdout()
	m := result.Match

	rows := [][]string{
		{"Score", strconv.Itoa(m.Score)},
		{"Start", youtube.FormatClock(m.Start)},
		{"End", youtube.FormatClock(m.End)},
		{"Duration", (m.End - m.Start).Round(time.Millisecond).String()},
	}
	if m.URL != "" {
		rows = append(rows, []string{"URL", m.URL})
	}
	if result.ClipEnd != m.End {
		rows = append(rows, []string{"Clip", fmt.Sprintf("%s - %s", youtube.FormatClock(result.ClipStart), youtube.FormatClock(result.ClipEnd))})
	}
	rows = append(rows, []string{"Frames", strconv.Itoa(len(result.Frames))})
	if srtOut != "" {
		rows = append(rows, []string{"SRT", srtOut})
	}

	fmt.Fprintf(out, "Match for %s query:\n", query.Kind())
	fmt.Fprintln(out, renderKeyValues(rows))
	fmt.Fprintf(out, "Text: %q\n", m.Text)
}

type frameOutput struct {
	Words []string `json:"words"`
	Start float64  `json:"start_seconds"`
	End   float64  `json:"end_seconds"`
}

type matchOutput struct {
	Text  string  `json:"text"`
	Score int     `json:"score"`
	Start float64 `json:"start_seconds"`
	End   float64 `json:"end_seconds"`
	URL   string  `json:"url,omitempty"`
}

type searchOutput struct {
	VideoID   string        `json:"video_id"`
	QueryKind string        `json:"query_kind"`
	Match     *matchOutput  `json:"match,omitempty"`
	ClipStart float64       `json:"clip_start_seconds"`
	ClipEnd   float64       `json:"clip_end_seconds"`
	Frames    []frameOutput `json:"frames"`
	SRTPath   string        `json:"srt_path,omitempty"`
}

func newSearchOutput(videoID string, query clip.Query, result *clip.Result, srtOut string) searchOutput {
	out := searchOutput{
		VideoID:   videoID,
		QueryKind: query.Kind().String(),
		ClipStart: result.ClipStart.Seconds(),
		ClipEnd:   result.ClipEnd.Seconds(),
		Frames:    make([]frameOutput, 0, len(result.Frames)),
		SRTPath:   srtOut,
	}
	if m := result.Match; m != nil {
		out.Match = &matchOutput{
			Text:  m.Text,
			Score: m.Score,
			Start: m.Start.Seconds(),
			End:   m.End.Seconds(),
			URL:   m.URL,
		}
	}
	for _, frame := range result.Frames {
		out.Frames = append(out.Frames, frameOutput{
			Words: frame.Words,
			Start: frame.Start.Seconds(),
			End:   frame.End.Seconds(),
		})
	}
	return out
}
