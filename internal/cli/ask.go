package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"

	"github.com/yildizm/datagov/internal/assistant"
	"github.com/yildizm/datagov/internal/logger"
	"github.com/yildizm/datagov/internal/monitor"
)

var askRaw bool

func newAskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <object-id> [question]",
		Short: "Ask the data assistant about a CDM object",
		Long: `Send a question about a CDM object to the configured AI provider. The
object's name and technical schema are attached as context. Without a
question the assistant explains the data quality implications of the
object's source fields, as "Analyze Health" does in the dashboard.

Any provider failure prints "Error getting response." and exits non-zero.`,
		Example: `  datagov ask cdm-001
  datagov ask cdm-002 "Which fields carry PII?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().BoolVar(&askRaw, "raw", false, "print the answer as plain markdown")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := logger.New("cli")

	cat, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}
	obj, ok := cat.Object(args[0])
	if !ok {
		return fmt.Errorf("object not found: %s", args[0])
	}

	question := assistant.HealthQuestion
	if len(args) > 1 {
		question = strings.Join(args[1:], " ")
	}

	a, err := newAssistant(cfg, monitor.New())
	if err != nil {
		return err
	}
	defer closeProviders(log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	answer, err := a.Ask(ctx, question, assistant.BuildObjectContext(obj))
	if err != nil {
		log.WarnWithFields("ask failed", []logger.Field{
			logger.F("object", obj.ID),
			logger.Error(err),
		})
		fmt.Fprintln(cmd.ErrOrStderr(), assistant.FallbackAnswer)
		return err
	}

	out := answer
	if !askRaw {
		out = renderAnswer(answer, useColor(cmd))
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return nil
}

// renderAnswer renders markdown for the terminal, or returns it untouched
// when rendering fails
func renderAnswer(answer string, color bool) string {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if color {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return answer
	}
	out, err := r.Render(answer)
	if err != nil {
		return answer
	}
	return out
}
