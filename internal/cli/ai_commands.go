package cli

import (
	"context"
	"flag"
	"fmt"
)

func (a *App) cmdAI(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("ai needs a subcommand: text or image")
	}

	fs := flag.NewFlagSet("ai "+args[0], flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	prompt := fs.String("prompt", "", "generation prompt")
	provider := fs.String("provider", "openai", "AI provider")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	ctx := context.Background()
	switch args[0] {
	case "text":
		seq := a.aiStore.Begin()
		result, err := a.ai.GenerateText(ctx, *prompt, *provider)
		if err != nil {
			a.aiStore.Fail(seq, err)
			return err
		}
		a.aiStore.ApplyText(seq, result)
		fmt.Fprintln(a.stdout, result.Content)
		return nil
	case "image":
		seq := a.aiStore.Begin()
		result, err := a.ai.GenerateImage(ctx, *prompt, *provider)
		if err != nil {
			a.aiStore.Fail(seq, err)
			return err
		}
		a.aiStore.ApplyImage(seq, result)
		fmt.Fprintln(a.stdout, result.URL)
		return nil
	default:
		return fmt.Errorf("unknown ai subcommand: %s", args[0])
	}
}
