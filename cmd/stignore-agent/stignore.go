package main

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/model"
)

type StignoreShowCmd struct {
	ContentType string `arg:"" help:"Content type of the .stignore file."`
}

func (c *StignoreShowCmd) Run(ctx *context) error {
	entries, err := ctx.agent.IgnoreEntries(c.ContentType)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%-6v  %v\n", e.Kind, e.Name)
	}

	return nil
}

type StignoreAddCmd struct {
	ContentType string   `arg:"" help:"Content type of the .stignore file."`
	Names       []string `arg:"" help:"Folder names to add."`
	Keep        bool     `short:"k" help:"Add the folders as keep entries instead of ignore entries."`
}

func (c *StignoreAddCmd) Run(ctx *context) error {
	return modifyIgnoreEntries(ctx, c.ContentType, model.AddOperation, c.Keep, c.Names)
}

type StignoreRemoveCmd struct {
	ContentType string   `arg:"" help:"Content type of the .stignore file."`
	Names       []string `arg:"" help:"Folder names to remove."`
	Keep        bool     `short:"k" help:"Remove keep entries instead of ignore entries."`
}

func (c *StignoreRemoveCmd) Run(ctx *context) error {
	return modifyIgnoreEntries(ctx, c.ContentType, model.RemoveOperation, c.Keep, c.Names)
}

func modifyIgnoreEntries(ctx *context, contentType string, op model.ActionOperation, keep bool, names []string) error {
	kind := lo.Ternary(keep, model.IgnoreKindKeep, model.IgnoreKindIgnore)

	edits := lo.Map(names, func(name string, _ int) model.ActionRequest {
		return model.ActionRequest{
			Operation: op.String(),
			Kind:      kind.String(),
			Name:      name,
		}
	})

	return ctx.agent.ModifyIgnoreEntries(contentType, &edits)
}
