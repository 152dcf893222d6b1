package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/utils"
)

type FlushCmd struct {
	ContentType string `arg:"" help:"Content type to flush."`
	Yes         bool   `short:"y" help:"Delete the listed folders."`
}

func (c *FlushCmd) Run(ctx *context) error {
	actions, err := ctx.agent.FlushPreview(c.ContentType)
	if err != nil {
		return err
	}

	if len(actions) == 0 {
		fmt.Printf("Nothing to flush\n")
		return nil
	}

	var total int64
	for _, a := range actions {
		fmt.Printf("%v %10v  %v\n", a.Operation, humanize.IBytes(uint64(a.SizeBytes)), a.Path)
		total += a.SizeBytes
	}

	if !c.Yes {
		fmt.Printf("%v folders (%v) would be deleted. Run again with --yes to delete them.\n",
			len(actions), humanize.IBytes(uint64(total)))
		return nil
	}

	confirmation := lo.Map(actions, func(a *model.PendingAction, _ int) model.ConfirmedAction {
		return model.ConfirmationFor(a)
	})

	bar := utils.NewProgressBar(len(actions), "Deleting")
	applied, err := ctx.agent.FlushConfirm(c.ContentType, &confirmation, func(*model.PendingAction) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	fmt.Printf("Deleted %v of %v folders\n", len(applied), len(actions))

	return err
}
