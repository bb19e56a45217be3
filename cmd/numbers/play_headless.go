//go:build !cgo

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window (needs a cgo build)",
	Run: func(_ *cobra.Command, _ []string) {
		fatal(errors.New("the desktop window requires a cgo/raylib build; use 'numbers term' instead"))
	},
}
