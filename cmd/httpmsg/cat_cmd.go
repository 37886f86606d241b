package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/httpmsg/log"
	"github.com/ghettovoice/httpmsg/stream"
)

type catCommandOpts struct {
	Mode   string
	Offset int64
}

func newCatCommand() *cobra.Command {
	opts := &catCommandOpts{}
	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print the file contents read through a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := stream.Mode(opts.Mode)
			if strings.HasPrefix(opts.Mode, "w") {
				return fmt.Errorf("%w: mode %q truncates the file", stream.ErrInvalidArgument, mode)
			}
			s, err := stream.Open(args[0], mode, &stream.Options{Log: log.Default()})
			if err != nil {
				return err
			}
			defer s.Close()

			if opts.Offset != 0 {
				if _, err := s.Seek(opts.Offset, io.SeekStart); err != nil {
					return err
				}
			}

			data, err := s.Contents()
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			if size, ok := s.Size(); ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nsize: %d bytes, read: %d bytes\n", size, len(data))
			}
			log.Default().LogAttrs(cmd.Context(), slog.LevelDebug, "file printed",
				slog.String("file", args[0]),
				slog.Any("stream", s),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", string(stream.ModeRead), "Open mode: r, r+, a+, c+, ... (truncating w modes are rejected)")
	cmd.Flags().Int64VarP(&opts.Offset, "offset", "o", 0, "Start reading at the offset")

	return cmd
}
