package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/connective-drills/internal/modules/connective"
)

// errViolation makes `validate` exit non-zero without cobra printing usage.
var errViolation = errors.New("item failed validation")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "drillctl",
		Short: "Offline tools for two-step connective drills",
		Long: `drillctl samples drill specs, renders reference answers, and runs the
strict item validator and the answer scorer without a running server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSampleCmd(),
		newReferenceCmd(),
		newValidateCmd(),
		newEvaluateCmd(),
	)
	return root
}

func newSampleCmd() *cobra.Command {
	var (
		difficulty string
		tries      int
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a spec for a difficulty and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := connective.Sample(connective.NewRand(seed), difficulty, tries)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), spec)
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "hsk3", "Difficulty label, e.g. hsk1..hsk6")
	cmd.Flags().IntVar(&tries, "tries", 200, "Maximum sampling attempts")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 uses the clock)")
	return cmd
}

func newReferenceCmd() *cobra.Command {
	var (
		specPath string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Print the reference answer and compact challenge for a spec",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := readSpec(specPath)
			if err != nil {
				return err
			}
			ref := connective.BuildExpectedReferenceAnswer(spec)
			challenge := connective.BuildCompactChallengeZH(spec)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"reference_answer_zh": ref,
					"challenge_zh":        challenge,
					"challenge_en":        connective.BuildChallengeEN(spec),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), challenge)
			fmt.Fprintln(cmd.OutOrStdout(), ref)
			return nil
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "Path to a spec JSON file (- for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var (
		specPath string
		itemPath string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the strict validator over a generated item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := readSpec(specPath)
			if err != nil {
				return err
			}
			raw, err := readInput(itemPath)
			if err != nil {
				return err
			}
			var item connective.GeneratedItem
			if err := json.Unmarshal(raw, &item); err != nil {
				return fmt.Errorf("parse item %s: %w", itemPath, err)
			}

			verr := connective.ValidateGeneratedItem(spec, item)
			out := cmd.OutOrStdout()
			if asJSON {
				res := map[string]any{"ok": verr == nil}
				if verr != nil {
					res["message"] = verr.Error()
				}
				if err := writeJSON(out, res); err != nil {
					return err
				}
			} else if verr != nil {
				fmt.Fprintln(out, verr.Error())
			} else {
				fmt.Fprintln(out, "OK")
			}
			if verr != nil {
				return errViolation
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "Path to a spec JSON file")
	cmd.Flags().StringVar(&itemPath, "item", "", "Path to an item JSON file (- for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func newEvaluateCmd() *cobra.Command {
	var (
		specPath string
		answer   string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score an answer against a spec and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := readSpec(specPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), connective.Evaluate(spec, answer))
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "Path to a spec JSON file")
	cmd.Flags().StringVar(&answer, "answer", "", "The learner's answer")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func readSpec(path string) (connective.Spec, error) {
	raw, err := readInput(path)
	if err != nil {
		return connective.Spec{}, err
	}
	spec, err := connective.ParseSpec(raw)
	if err != nil {
		return connective.Spec{}, fmt.Errorf("parse spec %s: %w", path, err)
	}
	if spec.Step1.CheckRegex == "" || spec.Step2.CheckRegex == "" {
		return connective.Spec{}, fmt.Errorf("spec %s is missing step patterns", path)
	}
	return spec, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
