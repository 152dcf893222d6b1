package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type DiscoverCmd struct {
}

func (c *DiscoverCmd) Run(ctx *context) error {
	for _, ct := range ctx.agent.ContentTypes() {
		fmt.Printf("%v\t%v\t(depth %v)\n", ct.Name, ct.RootPath, ct.SearchDepth)
	}

	return nil
}

type ListingCmd struct {
	ContentType string `arg:"" help:"Content type to list."`
}

func (c *ListingCmd) Run(ctx *context) error {
	folders, err := ctx.agent.Listing(c.ContentType)
	if err != nil {
		return err
	}

	var total int64
	for _, f := range folders {
		fmt.Printf("%10v  %v\n", humanize.IBytes(uint64(f.SizeBytes)), f.Name)
		total += f.SizeBytes
	}

	fmt.Printf("%10v  total in %v folders\n", humanize.IBytes(uint64(total)), len(folders))

	return nil
}
