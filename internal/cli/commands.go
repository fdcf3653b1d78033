package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wlang/wmap"
)

var errNotNormalizable = errors.New("weights cannot be normalized: total is zero or infinite")

// load decodes the pair file at path; "-" reads the command's input.
func (c *CLI) load(cmd *cobra.Command, path string) (*wmap.Map[string, rune], error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	m, err := c.family().Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.logger.Debug("Loaded", "file", path, "entries", m.Len())
	return m, nil
}

func (c *CLI) loadTwo(cmd *cobra.Command, args []string) (*wmap.Map[string, rune], *wmap.Map[string, rune], error) {
	a, err := c.load(cmd, args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := c.load(cmd, args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func writeMap(w io.Writer, m *wmap.Map[string, rune]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func (c *CLI) newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize FILE",
		Short:   "Scale weights to sum to one and drop zero entries",
		Example: `  wlang normalize lang.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}
			n, logNorm, ok := m.NormalizeStructure().TryNormalizeValues()
			if !ok {
				return errNotNormalizable
			}
			c.logger.Info("Normalized", "log_normalizer", logNorm, "entries", n.Len())
			return writeMap(cmd.OutOrStdout(), n)
		},
	}
}

func (c *CLI) newSumCommand() *cobra.Command {
	var w1, w2 float64

	cmd := &cobra.Command{
		Use:     "sum A B",
		Short:   "Weighted sum of two languages",
		Example: `  wlang sum a.json b.json --w1 0.3 --w2 0.7`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := c.loadTwo(cmd, args)
			if err != nil {
				return err
			}
			s, err := a.SumWeighted(w1, w2, b)
			if err != nil {
				return err
			}
			return writeMap(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().Float64Var(&w1, "w1", 1, "Linear weight of A")
	cmd.Flags().Float64Var(&w2, "w2", 1, "Linear weight of B")
	return cmd
}

func (c *CLI) newProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product A B",
		Short: "Pointwise product (intersection) of two languages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := c.loadTwo(cmd, args)
			if err != nil {
				return err
			}
			return writeMap(cmd.OutOrStdout(), a.Product(b))
		},
	}
}

func (c *CLI) newSupportCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "support FILE",
		Short:   "List the sequences with non-zero weight",
		Example: `  wlang support lang.json --max-count 100`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}
			support, err := m.NormalizeStructure().EnumerateSupport(c.maxCount, false)
			if err != nil {
				return err
			}
			for _, s := range support {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", s)
			}
			return nil
		},
	}
}

func (c *CLI) newValueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "value FILE SEQUENCE",
		Short: "Print the weight of one sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}
			logW := m.GetLogValue(args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "log=%g value=%g\n", logW, math.Exp(logW))
			return nil
		},
	}
}

func (c *CLI) newSimilarityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity A B",
		Short: "Print the divergence of two languages, 0 for identical",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := c.loadTwo(cmd, args)
			if err != nil {
				return err
			}
			start := time.Now()
			d := a.MaxDiff(b)
			c.logger.Debug("Similarity computed", "duration", time.Since(start))
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", d)
			return nil
		},
	}
}

func (c *CLI) newBestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "best FILE",
		Short: "Print the most probable sequence after normalization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}
			n, _, ok := m.TryNormalizeValues()
			if !ok {
				return errNotNormalizable
			}
			s, logW, err := n.AsAutomaton().MostProbableSequence()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q %g\n", s, math.Exp(logW))
			return nil
		},
	}
}
