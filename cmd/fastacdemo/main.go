package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dan-masek/fastac"
	"github.com/spf13/cobra"
)

const byteAlphabet = 256

func main() {
	rootCmd := &cobra.Command{
		Use:   "fastacdemo",
		Short: "Compress and decompress byte streams with an adaptive arithmetic coder",
	}

	var maxFrameLen int

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Read stdin, write an adaptively-coded frame to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(os.Stdin, os.Stdout)
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Read a frame from stdin, write the decoded bytes to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(os.Stdin, os.Stdout, maxFrameLen)
		},
	}
	decodeCmd.Flags().IntVar(&maxFrameLen, "max-frame-len", 64<<20, "reject frames declaring a longer payload than this")

	rootCmd.AddCommand(encodeCmd, decodeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEncode(r io.Reader, w io.Writer) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// A destination buffer double the input size comfortably covers the
	// worst case (an incompressible stream plus framing overhead); the
	// codec itself reports ErrBufferOverflow if it ever falls short.
	codec, err := fastac.NewCodec(2*len(input) + 64)
	if err != nil {
		return fmt.Errorf("creating codec: %w", err)
	}
	model, err := fastac.NewAdaptiveModel(byteAlphabet)
	if err != nil {
		return fmt.Errorf("creating model: %w", err)
	}

	if err := codec.StartEncoder(); err != nil {
		return fmt.Errorf("starting encoder: %w", err)
	}
	for _, b := range input {
		if err := codec.EncodeAdaptiveSymbol(int(b), model); err != nil {
			return fmt.Errorf("encoding byte: %w", err)
		}
	}
	n, err := codec.StopEncoder()
	if err != nil {
		return fmt.Errorf("stopping encoder: %w", err)
	}

	// The coded stream carries no end-of-stream marker, so the decoded
	// symbol count is framed ahead of it as a small uvarint payload of
	// its own.
	var countBuf [binary.MaxVarintLen64]byte
	countLen := binary.PutUvarint(countBuf[:], uint64(len(input)))
	if _, err := fastac.WriteFrame(w, countBuf[:countLen]); err != nil {
		return fmt.Errorf("writing length frame: %w", err)
	}

	// NewCodecWithBuffer/StartDecoder need at least 4 bytes to read the
	// decoder's initial code word, but StopEncoder can emit fewer (e.g.
	// a single byte for an empty input). The codec's owned buffer is
	// freshly zeroed past pos, so padding the frame out to 4 bytes with
	// that trailing zero region is equivalent to what readByte already
	// returns once the buffer is exhausted.
	frameLen := n
	if frameLen < 4 {
		frameLen = 4
	}
	if _, err := fastac.WriteFrame(w, codec.Buffer()[:frameLen]); err != nil {
		return fmt.Errorf("writing coded frame: %w", err)
	}
	fmt.Fprintf(os.Stderr, "encoded %d bytes -> %d bytes\n", len(input), n)
	return nil
}

func runDecode(r io.Reader, w io.Writer, maxFrameLen int) error {
	countPayload, err := fastac.ReadFrame(r, binary.MaxVarintLen64)
	if err != nil {
		return fmt.Errorf("reading length frame: %w", err)
	}
	count, n := binary.Uvarint(countPayload)
	if n <= 0 {
		return fmt.Errorf("malformed length frame")
	}

	payload, err := fastac.ReadFrame(r, maxFrameLen)
	if err != nil {
		return fmt.Errorf("reading coded frame: %w", err)
	}

	codec, err := fastac.NewCodecWithBuffer(payload)
	if err != nil {
		return fmt.Errorf("creating codec: %w", err)
	}
	model, err := fastac.NewAdaptiveModel(byteAlphabet)
	if err != nil {
		return fmt.Errorf("creating model: %w", err)
	}

	if err := codec.StartDecoder(); err != nil {
		return fmt.Errorf("starting decoder: %w", err)
	}

	out := make([]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		s, err := codec.DecodeAdaptiveSymbol(model)
		if err != nil {
			return fmt.Errorf("decoding byte %d: %w", i, err)
		}
		out = append(out, byte(s))
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
