package main

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/command/help"

	_ "github.com/keshon/svcs/internal/command/add"
	_ "github.com/keshon/svcs/internal/command/checkout"
	_ "github.com/keshon/svcs/internal/command/commit"
	_ "github.com/keshon/svcs/internal/command/config"
	_ "github.com/keshon/svcs/internal/command/log"
)

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	tpl, err := template.New("readme").Parse(string(tplBytes))
	if err != nil {
		fmt.Printf("Failed to parse template: %v\n", err)
		os.Exit(1)
	}

	var sections strings.Builder
	for _, cmd := range command.AllCommands() {
		if cmd.Name() == command.HelpCommand {
			continue
		}
		fmt.Fprintf(&sections,
			"### %s\n```\n%s\n\n%s\n```\n\n",
			cmd.Name(),
			cmd.Usage(),
			cmd.Help(),
		)
	}

	data := map[string]string{
		"HelpPage":        help.Page(),
		"CommandSections": strings.TrimRight(sections.String(), "\n"),
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := tpl.Execute(outFile, data); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}
