package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/mmcdole/faccess/pkg/access"
)

// printSteps renders the components a check examined as a table
func printSteps(w io.Writer, steps []access.Step) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Path", "Role", "Mode", "Owner", "Principal", "Test", "Result"})

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, s := range steps {
		kind := "-"
		if s.Metadata.IsDir {
			kind = "d"
		}
		result := "granted"
		if !s.Granted {
			result = "denied"
		}
		table.Append([]string{
			s.Path,
			s.Role.String(),
			fmt.Sprintf("%s%04o", kind, s.Metadata.Mode),
			fmt.Sprintf("%d:%d", s.Metadata.UID, s.Metadata.GID),
			s.Principal.String(),
			s.Mask.String(),
			result,
		})
	}
	table.Render()
}
