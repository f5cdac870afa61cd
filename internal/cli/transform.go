package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

// transformCommand builds a subcommand that loads the hand, applies fn
// and prints the result.
func (c *CLI) transformCommand(use, short string, fn func(cmd *cobra.Command, args []string, h domino.Hand) (domino.Hand, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			hand, err := c.loadHand()
			if err != nil {
				return err
			}
			out, err := fn(cmd, args, hand)
			if err != nil {
				return err
			}
			change := domino.Diff(hand, out)
			c.Logger.Debug(cmd.Name(), "before", len(hand), "after", len(out),
				"removed", len(change.Removed), "added", len(change.Added))
			return c.writeHand(cmd.OutOrStdout(), out)
		},
	}
}

// sortCommand creates the "sort" subcommand.
func (c *CLI) sortCommand() *cobra.Command {
	var order string
	cmd := c.transformCommand("sort", "Sort tiles by pip total",
		func(cmd *cobra.Command, _ []string, h domino.Hand) (domino.Hand, error) {
			o := c.Config.Order()
			if cmd.Flags().Changed("order") {
				parsed, err := domino.ParseOrder(order)
				if err != nil {
					return nil, err
				}
				o = parsed
			}
			return domino.Sort(h, o), nil
		})
	cmd.Long = "Sort tiles by pip total. Equal totals are ordered by the first pip in the same direction."
	cmd.Flags().StringVarP(&order, "order", "o", "asc", "sort direction: asc or desc (default: configured sort_order)")
	return cmd
}

// dedupeCommand creates the "dedupe" subcommand.
func (c *CLI) dedupeCommand() *cobra.Command {
	cmd := c.transformCommand("dedupe", "Remove every tile whose value appears more than once",
		func(_ *cobra.Command, _ []string, h domino.Hand) (domino.Hand, error) {
			return domino.RemoveDuplicates(h), nil
		})
	cmd.Aliases = []string{"remove-duplicates"}
	cmd.Long = "Remove every copy of any tile value that appears more than once. [3,4] and [4,3] are the same value."
	return cmd
}

// flipCommand creates the "flip" subcommand.
func (c *CLI) flipCommand() *cobra.Command {
	return c.transformCommand("flip", "Swap the halves of every tile",
		func(_ *cobra.Command, _ []string, h domino.Hand) (domino.Hand, error) {
			return domino.Flip(h), nil
		})
}

// removeCommand creates the "remove" subcommand.
func (c *CLI) removeCommand() *cobra.Command {
	cmd := c.transformCommand("remove [TOTAL]", "Remove tiles whose pips add up to TOTAL",
		func(_ *cobra.Command, args []string, h domino.Hand) (domino.Hand, error) {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return domino.RemoveByInput(h, input)
		})
	cmd.Long = "Remove tiles whose pips add up to TOTAL. Without TOTAL the hand is printed unchanged."
	cmd.Args = cobra.MaximumNArgs(1)
	return cmd
}

// addCommand creates the "add" subcommand.
func (c *CLI) addCommand() *cobra.Command {
	var appendOnly bool
	cmd := c.transformCommand("add FIRST SECOND", "Add a tile, or remove it if already present",
		func(_ *cobra.Command, args []string, h domino.Hand) (domino.Hand, error) {
			tile, err := parseTileArgs(args)
			if err != nil {
				return nil, err
			}
			if appendOnly {
				return domino.Append(h, tile)
			}
			return domino.Toggle(h, tile)
		})
	cmd.Long = "Add a tile to the end of the hand. If a tile of the same value (in either orientation) is already present, the first one is removed instead."
	cmd.Args = cobra.ExactArgs(2)
	cmd.Flags().BoolVar(&appendOnly, "append", false, "always append, even if the tile is present")
	return cmd
}

// parseTileArgs turns two pip arguments into a tile. Range is checked by
// the transform, not here.
func parseTileArgs(args []string) (domino.Tile, error) {
	var pips [2]int
	fields := [2]string{"first", "second"}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return domino.Tile{}, &domino.ValidationError{
				Field:   fields[i],
				Value:   a,
				Message: "must be a whole number",
				Cause:   domino.ErrInvalidPip,
			}
		}
		pips[i] = v
	}
	return domino.T(pips[0], pips[1]), nil
}

// showCommand creates the "show" subcommand.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the hand with doubles and duplicates marked",
		RunE: func(cmd *cobra.Command, args []string) error {
			hand, err := c.loadHand()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, t := range hand {
				mark := ""
				switch {
				case t.IsDouble():
					mark = StyleDouble.Render("double")
				case domino.IsDuplicated(hand, t):
					mark = StyleDuplicate.Render("duplicate")
				}
				fmt.Fprintf(w, "%3d  %s  %s\n", i+1, StyleValue.Render(t.String()), mark)
			}
			return nil
		},
	}
}
