package command

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// mutate opens the project, applies fn, and reports the result. In JSON mode
// the updated message is printed; otherwise the summary fn returns.
func mutate(cmd *cobra.Command, fn func(ctx *CommandContext) (string, error)) error {
	ctx, err := GetContext(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	defer ctx.Close()

	summary, err := fn(ctx)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	if ctx.JSONMode {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(ctx.Store.Message())
	}
	if summary != "" {
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	}
	return nil
}

// parseIndex parses a 0-based index and checks it against a list of size n.
func parseIndex(value string, n int, what string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s index: %s", what, value)
	}
	if i < 0 || i >= n {
		if n == 0 {
			return 0, fmt.Errorf("%s index %d out of range (no %ss)", what, i, what)
		}
		return 0, fmt.Errorf("%s index %d out of range (0-%d)", what, i, n-1)
	}
	return i, nil
}

func embedIndex(msg types.Message, arg string) (int, error) {
	return parseIndex(arg, len(msg.Embeds), "embed")
}

func fieldIndex(msg types.Message, embedArg, fieldArg string) (int, int, error) {
	i, err := embedIndex(msg, embedArg)
	if err != nil {
		return 0, 0, err
	}
	j, err := parseIndex(fieldArg, len(msg.Embeds[i].Fields), "field")
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

func rowIndex(msg types.Message, arg string) (int, error) {
	return parseIndex(arg, len(msg.Components), "row")
}

func componentIndex(msg types.Message, rowArg, componentArg string) (int, int, error) {
	i, err := rowIndex(msg, rowArg)
	if err != nil {
		return 0, 0, err
	}
	j, err := parseIndex(componentArg, len(msg.Components[i].Components), "component")
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean: %s. Use on or off", value)
}

// readMessageFile reads a message from path, or from stdin when path is "-".
func readMessageFile(path string, stdin io.Reader) (types.Message, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return types.Message{}, err
	}
	return types.DecodeMessage(data)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func truncate(value string, n int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[:n-1]) + "…"
}

func writeJSON(out io.Writer, value any) error {
	return json.NewEncoder(out).Encode(value)
}

func displayOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
