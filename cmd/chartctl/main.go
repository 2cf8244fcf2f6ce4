// Command chartctl renders wheel charts and ikigai diagrams from request JSON
// without running the HTTP service.
package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MalithGihan/chart-service/internal/render"
	"github.com/MalithGihan/chart-service/internal/style"
	"github.com/MalithGihan/chart-service/internal/validate"
)

const (
	sampleWheel = `{"data":[5,7,3,8,9,4,7,6],` +
		`"categories":["Health","Relationships","Career","Finance","Learning","Leisure","Physical Environment","Personal Growth"],` +
		`"title":"Wheel of Life"}`
	sampleIkigai = `{"labels":["Love","World Needs","Good At","Paid For"],` +
		`"overlap":["Passion","Mission","Profession","Vocation"],"title":"IKIGAI"}`
)

type options struct {
	input     string
	output    string
	styleFile string
	encode    bool
	sample    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "chartctl",
		Short: "Render wheel-of-life charts and ikigai diagrams to PNG",
		Long: `chartctl reads the same JSON bodies the chart service accepts and writes
the rendered PNG (or its base64 text) to a file or stdout.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "-", "Request JSON file (- for stdin)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "-", "Output file (- for stdout)")
	root.PersistentFlags().StringVar(&opts.styleFile, "style", os.Getenv("STYLE_FILE"), "YAML style overlay")
	root.PersistentFlags().BoolVar(&opts.encode, "base64", false, "Write base64 text instead of PNG bytes")
	root.PersistentFlags().BoolVar(&opts.sample, "sample", false, "Ignore --input and render the built-in sample")

	root.AddCommand(&cobra.Command{
		Use:   "wheel",
		Short: "Render a wheel-of-life chart ({data, categories, title})",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, sampleWheel, func(r *render.Renderer, body []byte) ([]byte, error) {
				req, err := validate.Chart(body)
				if err != nil {
					return nil, err
				}
				return r.Chart(req)
			})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "ikigai",
		Short: "Render an ikigai diagram ({labels, overlap, title})",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, sampleIkigai, func(r *render.Renderer, body []byte) ([]byte, error) {
				req, err := validate.Diagram(body)
				if err != nil {
					return nil, err
				}
				return r.Diagram(req)
			})
		},
	})
	return root
}

func run(cmd *cobra.Command, opts *options, sample string, draw func(*render.Renderer, []byte) ([]byte, error)) error {
	st, err := style.Load(opts.styleFile)
	if err != nil {
		return err
	}

	body := []byte(sample)
	if !opts.sample {
		if body, err = readInput(cmd.InOrStdin(), opts.input); err != nil {
			return err
		}
	}

	img, err := draw(render.New(st), body)
	if err != nil {
		return err
	}
	if opts.encode {
		img = []byte(base64.StdEncoding.EncodeToString(img))
	}

	if opts.output == "-" {
		_, err = cmd.OutOrStdout().Write(img)
		return err
	}
	if err := os.WriteFile(opts.output, img, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", opts.output, len(img))
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
