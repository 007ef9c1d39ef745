package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"pcdir/internal/directory/models"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	return tw.Render()
}

var pcTableHeaders = []string{"ID", "Owner", "Email", "OS", "Hardware", "RAM", "Status", "Mail"}

func pcTableRow(pc *models.Entry) []string {
	ownerName, ownerEmail := "-", "-"
	if owner := pc.Owner(); owner != nil {
		ownerName = owner.FullName()
		ownerEmail = owner.Email.String()
	}
	return []string{
		fmt.Sprintf("%d", pc.ID()),
		ownerName,
		ownerEmail,
		pc.OS().String(),
		pc.Hardware().Flags.String(),
		fmt.Sprintf("%d GiB", pc.Hardware().RAM/models.Gibibyte),
		pc.Status().String(),
		fmt.Sprintf("%d", pc.MailboxLen()),
	}
}

func renderPCs(pcs []*models.Entry) string {
	rows := make([][]string, 0, len(pcs))
	for _, pc := range pcs {
		rows = append(rows, pcTableRow(pc))
	}
	return renderTable(pcTableHeaders, rows)
}
