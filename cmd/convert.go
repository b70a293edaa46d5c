package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ben-spoonradio/examdrill/internal/question"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert a question file between formats",
	Long: `Convert reads a question file and rewrites it in the format implied by
the destination extension. Supported formats: .json, .yaml/.yml, .xlsx.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath, dstPath := args[0], args[1]

		src, err := question.SourceForPath(srcPath)
		if err != nil {
			return err
		}
		records, err := src.Load()
		if err != nil {
			return err
		}
		if err := question.ValidateSet(records); err != nil {
			return fmt.Errorf("%s: %w", srcPath, err)
		}

		switch strings.ToLower(filepath.Ext(dstPath)) {
		case ".json":
			err = question.WriteJSON(dstPath, records)
		case ".yaml", ".yml":
			err = question.WriteYAML(dstPath, records)
		case ".xlsx":
			err = question.WriteExcel(dstPath, records)
		default:
			return fmt.Errorf("unsupported destination format %q", filepath.Ext(dstPath))
		}
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %d questions to %s\n", len(records), dstPath)
		return nil
	},
}
