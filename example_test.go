package notes2html_test

import (
	"context"
	"fmt"
	"strings"

	notes2html "github.com/alnah/go-notes2html"
)

// Example demonstrates converting two note files into one tabbed page.
func Example() {
	conv := notes2html.New()
	defer conv.Close()

	result, err := conv.Convert(context.Background(), notes2html.Input{
		Title: "Spring Study Notes",
		Docs: [notes2html.DocumentCount]notes2html.Document{
			{Label: "Core", Text: "1. Introduction to Spring\nSpring is an application framework.\n"},
			{Label: "Web", Text: "1. Controllers and Routing\nHandlers map requests to views.\n"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Each document contributes one navigation section
	fmt.Println("sections:", result.SectionCounts[0], result.SectionCounts[1])
	if strings.Contains(result.HTML, `id="h-1"`) {
		fmt.Println("anchored headings generated")
	}
	// Output:
	// sections: 1 1
	// anchored headings generated
}

// Example_customRules demonstrates extending the heading filter.
func Example_customRules() {
	rules := notes2html.DefaultRules()
	rules.Denylist = append(rules.Denylist, "DRAFT")

	conv := notes2html.New(notes2html.WithRules(rules))
	defer conv.Close()

	result, err := conv.Convert(context.Background(), notes2html.Input{
		Docs: [notes2html.DocumentCount]notes2html.Document{
			{Text: "1. DRAFT chapter outline\nPending review.\n"},
			{Text: "1. Dependency Injection Basics\nConstructor injection.\n"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The denylisted heading is excluded from navigation
	fmt.Println("sections:", result.SectionCounts[0], result.SectionCounts[1])
	// Output: sections: 0 1
}

// ExampleNew_withDateFormat demonstrates the footer date format option.
func ExampleNew_withDateFormat() {
	conv := notes2html.New(notes2html.WithDateFormat("long"))
	defer conv.Close()

	result, err := conv.Convert(context.Background(), notes2html.Input{
		FooterText: "Keep learning",
		Docs: [notes2html.DocumentCount]notes2html.Document{
			{Text: "1. Transaction Management\nDeclarative transactions.\n"},
			{Text: "1. Aspect Oriented Programming\nCross-cutting concerns.\n"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(result.HTML, "Keep learning") {
		fmt.Println("footer rendered")
	}
	// Output: footer rendered
}
