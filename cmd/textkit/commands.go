package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/logger"
	"github.com/dmitrymomot/textkit/pkg/strutil"
)

func (a *app) transformCommands() []*cobra.Command {
	var pascalCamel, pascalSnake, allowHTML bool

	ascii := a.transformCmd("ascii", "Replace accented letters with ASCII equivalents",
		func(s string) (string, error) { return strutil.ToASCII(s), nil })
	ascii.RunE = a.runASCII(ascii.RunE)

	camel := a.transformCmd("camel", "Convert hyphen, underscore or space separated words to camelCase",
		func(s string) (string, error) { return strutil.ToCamelCase(s, pascalCamel), nil })
	camel.Flags().BoolVar(&pascalCamel, "pascal", false, "produce PascalCase")

	snakeToCamel := a.transformCmd("snake-to-camel", "Convert snake_case to camelCase",
		func(s string) (string, error) { return strutil.SnakeToCamel(s, pascalSnake), nil })
	snakeToCamel.Flags().BoolVar(&pascalSnake, "pascal", false, "produce PascalCase")

	sanitizeClient := a.transformCmd("sanitize-client", "Escape HTML special characters",
		func(s string) (string, error) { return strutil.SanitizeClient(s, allowHTML) })
	sanitizeClient.Flags().BoolVar(&allowHTML, "allow-html", false, "keep safe HTML (not supported)")

	return []*cobra.Command{
		ascii,
		a.transformCmd("hyphenize", "Trim and join words with hyphens",
			func(s string) (string, error) { return strutil.Hyphenize(s), nil }),
		camel,
		a.transformCmd("snake", "Hyphenize and replace hyphens with underscores",
			func(s string) (string, error) { return strutil.ToSnakeCase(s), nil }),
		a.transformCmd("camel-to-snake", "Convert camelCase or PascalCase to snake_case",
			func(s string) (string, error) { return strutil.CamelToSnake(s), nil }),
		snakeToCamel,
		sanitizeClient,
		a.transformCmd("sanitize-xml", "Escape & and < for XML text",
			func(s string) (string, error) { return strutil.SanitizeXML(s), nil }),
	}
}

func (a *app) validateCommands() []*cobra.Command {
	var dateFormat string

	isDate := a.validateCmd("is-date", "Report whether inputs are real calendar dates",
		func(s string) bool { return strutil.IsDate(s, dateFormat) })
	isDate.Flags().StringVar(&dateFormat, "format", a.cfg.DateFormat, "date format made of mm, dd and yyyy")
	isDate.PreRunE = func(*cobra.Command, []string) error {
		if _, err := strutil.ParseDateLayout(dateFormat); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
		return nil
	}

	return []*cobra.Command{
		a.validateCmd("is-int", "Report whether inputs are integers", strutil.IsInt),
		a.validateCmd("is-float", "Report whether inputs are canonical numbers", strutil.IsFloat),
		isDate,
		a.validateCmd("is-email", "Report whether inputs look like e-mail addresses", strutil.IsEmail),
	}
}

func (a *app) transformCmd(use, short string, fn func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [input...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			results := make([]result, 0, len(inputs))
			for _, in := range inputs {
				out, err := fn(in)
				if err != nil {
					return fmt.Errorf("%s: %w", use, err)
				}
				results = append(results, result{Input: in, Output: out})
			}

			a.logResult(cmd.Context(), len(results))
			return writeResults(cmd.OutOrStdout(), a.output, results)
		},
	}
}

func (a *app) validateCmd(use, short string, fn func(string) bool) *cobra.Command {
	return &cobra.Command{
		Use:     use + " [--] [input...]",
		Short:   short,
		Example: fmt.Sprintf("  %s %s -- -5 42", appName, use),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			results := make([]result, 0, len(inputs))
			rejected := 0
			for _, in := range inputs {
				ok := fn(in)
				if !ok {
					rejected++
					a.log.DebugContext(cmd.Context(), "rejected", logger.Input(in))
				}
				results = append(results, result{Input: in, Output: ok})
			}

			a.logResult(cmd.Context(), len(results))
			if err := writeResults(cmd.OutOrStdout(), a.output, results); err != nil {
				return err
			}
			if a.strict && rejected > 0 {
				return fmt.Errorf("%d of %d rejected: %w", rejected, len(inputs), errInvalidInput)
			}
			return nil
		},
	}
}

// runASCII streams stdin through the transliterator when there are no
// arguments and plain text output is requested.
func (a *app) runASCII(batch func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 || a.output != outputText {
			return batch(cmd, args)
		}
		n, err := io.Copy(cmd.OutOrStdout(), strutil.NewASCIIReader(cmd.InOrStdin()))
		if err != nil {
			return fmt.Errorf("ascii: %w", err)
		}
		a.log.DebugContext(cmd.Context(), "streamed", "bytes", n)
		return nil
	}
}

// readInputs returns args, or the lines of r when args is empty.
func readInputs(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
