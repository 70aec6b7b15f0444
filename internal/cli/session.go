// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Interactive driver for the extraction pipeline.
//
// The driver owns all prompting and printing. Pipeline packages stay
// pure: the driver validates input, hands the pipeline already-checked
// parameters, and renders the results. Expected terminations travel up
// as Outcome values; only failures travel as errors.

package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/classify"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/config"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/export"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/render"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/util"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/view"
)

// labelWidth caps listing labels at a readable terminal width.
const labelWidth = 100

// Session holds the state of one interactive run.
type Session struct {
	data    []model.Conversation
	entries []model.ClassifiedEntry
	opts    *export.Options
	line    *liner.State
}

// Run loads the input file, classifies it, and drives the interactive
// selection and export flow to a single Outcome.
func Run(args Args, cfg *config.Config) (Outcome, error) {
	inputFile := cfg.InputFile
	if args.File != "" {
		inputFile = args.File
	}

	data, err := model.Load(inputFile)
	if err != nil {
		return Outcome{}, &FileError{Err: err}
	}

	entries, err := buildEntries(data)
	if err != nil {
		return Outcome{}, err
	}

	s := &Session{
		data:    data,
		entries: entries,
		opts:    &export.Options{OutputDir: cfg.OutputDir},
		line:    liner.NewLiner(),
	}
	defer s.line.Close()
	s.line.SetCtrlCAborts(true)

	s.printMenu()
	choice, err := s.promptMenuChoice()
	if err != nil {
		return Outcome{}, err
	}

	switch choice {
	case "0":
		return s.runListing(view.Category(entries, model.CategoryProject))
	case "1":
		return s.runListing(view.Category(entries, model.CategoryGPT))
	case "2":
		return s.runListing(view.Category(entries, model.CategoryPlain))
	case "3":
		return s.runListing(view.Ascending(entries))
	case "4":
		return s.runListing(view.Descending(entries))
	case "5":
		return s.runKeywordSearch()
	}
	return Outcome{}, NewValidationError("invalid choice")
}

// buildEntries classifies the dataset. Classification is best-effort
// over untrusted shapes; a panic here is surfaced as a processing
// failure instead of a crash.
func buildEntries(data []model.Conversation) (entries []model.ClassifiedEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ProcessingError{Err: fmt.Errorf("error classifying conversations: %v", r)}
		}
	}()
	return classify.BuildEntries(data), nil
}

// =============================================================================
// PROMPTING
// =============================================================================

// prompt reads one trimmed line. Ctrl-C and EOF both end the run as an
// interrupt.
func (s *Session) prompt(text string) (string, error) {
	in, err := s.line.Prompt(text)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(in), nil
}

func (s *Session) printMenu() {
	fmt.Println()
	fmt.Println(RenderSeparator(40))
	fmt.Println(TitleStyle.Render("Select category to browse:"))
	fmt.Println("0: Project")
	fmt.Println("1: GPT")
	fmt.Println("2: Plain")
	fmt.Println("3: List all chats sequentially ASC")
	fmt.Println("4: List all chats sequentially DESC")
	fmt.Println("5: Fuzzy search by keyword")
}

// promptMenuChoice re-prompts until the user enters a valid menu item.
// The menu is the one input worth retrying; everything later fails hard
// and the user re-invokes the program.
func (s *Session) promptMenuChoice() (string, error) {
	valid := map[string]bool{"0": true, "1": true, "2": true, "3": true, "4": true, "5": true}
	for {
		choice, err := s.prompt("\nEnter choice: ")
		if err != nil {
			return "", err
		}
		if valid[choice] {
			return choice, nil
		}
		fmt.Println(WarningStyle.Render("Invalid choice. Please enter one of: 0, 1, 2, 3, 4, 5"))
		fmt.Println("Please try again.")
	}
}

func (s *Session) printItems(items []view.Item) {
	for _, it := range items {
		fmt.Printf("%d: %s\n", it.Display, util.TruncateWidth(it.Entry.Label, labelWidth))
	}
}

// =============================================================================
// LISTING FLOW (CATEGORY / ASC / DESC)
// =============================================================================

func (s *Session) runListing(items []view.Item) (Outcome, error) {
	fmt.Println(DimStyle.Render(fmt.Sprintf("Hint: There are %d available", len(s.data))))
	rangeInput, err := s.prompt("How many at a time or what range? [e.g., 10, or 50-100, or {ENTER} for all]: ")
	if err != nil {
		return Outcome{}, err
	}

	spec, err := view.ParseSpec(rangeInput, len(items))
	if err != nil {
		return Outcome{}, &ValidationError{Reason: err.Error()}
	}

	switch spec.Kind {
	case view.SpecPage:
		return s.pageThrough(items, spec.Size)
	case view.SpecRange:
		return s.selectOrZip(items, view.Slice(items, spec.Start, spec.End))
	default:
		return s.selectOrZip(items, items)
	}
}

// pageThrough lists the view in batches, letting the user select a chat
// from any batch shown so far or press ENTER for the next batch.
func (s *Session) pageThrough(items []view.Item, size int) (Outcome, error) {
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		fmt.Printf("\n%s\n", TitleStyle.Render(fmt.Sprintf("--- Chats %d to %d ---", start, end-1)))
		s.printItems(items[start:end])

		input, err := s.prompt("\nSelect chat # to extract or press ENTER to continue: ")
		if err != nil {
			return Outcome{}, err
		}
		if input == "" {
			continue
		}

		sel, err := strconv.Atoi(input)
		if err != nil {
			return Outcome{}, NewValidationError("please enter a valid number")
		}
		item, err := view.ResolveSelection(items, sel, len(s.data))
		if err != nil {
			return Outcome{}, &ValidationError{Reason: err.Error()}
		}
		return s.exportSingle(item.Entry)
	}
	return Outcome{Kind: OutcomeNoSelection, Message: "No conversation selected."}, nil
}

// selectOrZip shows the chosen slice of the view, then exports either
// one selected conversation or the whole slice as an archive. Selection
// numbers resolve against the full view, not just the shown slice.
func (s *Session) selectOrZip(all, toShow []view.Item) (Outcome, error) {
	fmt.Printf("\n%s\n", TitleStyle.Render("--- Available Chats ---"))
	s.printItems(toShow)

	input, err := s.prompt("\nSelect the conversation number to extract, or type 'zip' to export all to a zip: ")
	if err != nil {
		return Outcome{}, err
	}

	if input == "zip" {
		zipName := render.Timestamp(nowEpoch()) + "-range_export.zip"
		return s.exportZip(toShow, zipName)
	}

	sel, err := strconv.Atoi(input)
	if err != nil {
		return Outcome{}, NewValidationError("invalid input, please enter a number or 'zip'")
	}
	item, err := view.ResolveSelection(all, sel, len(s.data))
	if err != nil {
		return Outcome{}, &ValidationError{Reason: err.Error()}
	}
	return s.exportSingle(item.Entry)
}

// =============================================================================
// KEYWORD SEARCH FLOW
// =============================================================================

func (s *Session) runKeywordSearch() (Outcome, error) {
	keyword, err := s.prompt("Enter keyword to search for (case-insensitive, title match): ")
	if err != nil {
		return Outcome{}, err
	}
	keyword = strings.ToLower(keyword)

	matched := view.Keyword(s.entries, keyword)
	fmt.Printf("\n%s\n", TitleStyle.Render(fmt.Sprintf("--- Matches (%d results) ---", len(matched))))
	s.printItems(matched)

	input, err := s.prompt("\nEnter a number to extract one, or type 'zip' to export all to a zip: ")
	if err != nil {
		return Outcome{}, err
	}

	if input == "zip" {
		zipName := render.Timestamp(nowEpoch()) + "-fuzzy_matches_" + export.SanitizeTitle(keyword) + ".zip"
		return s.exportZip(matched, zipName)
	}

	sel, err := strconv.Atoi(input)
	if err != nil {
		return Outcome{}, NewValidationError("invalid input, please enter a number or 'zip'")
	}
	item, err := view.ResolveSelection(matched, sel, len(s.data))
	if err != nil {
		return Outcome{}, &ValidationError{Reason: err.Error()}
	}
	return s.exportSingle(item.Entry)
}

// =============================================================================
// EXPORT ACTIONS
// =============================================================================

func (s *Session) exportSingle(entry model.ClassifiedEntry) (Outcome, error) {
	unit := model.UnitFor(s.data, entry)
	path, ok, err := export.WriteMarkdown(unit, s.opts)
	if err != nil {
		return Outcome{}, &ExportError{Err: err}
	}
	if !ok {
		fmt.Println(WarningStyle.Render("No valid messages found to export."))
	} else {
		fmt.Println(SuccessStyle.Render("Saved: " + filepath.Base(path)))
	}
	return Outcome{Kind: OutcomeExported, Message: "Conversation exported successfully"}, nil
}

func (s *Session) exportZip(items []view.Item, zipName string) (Outcome, error) {
	units := make([]model.ExportUnit, 0, len(items))
	for _, it := range items {
		units = append(units, model.UnitFor(s.data, it.Entry))
	}

	result, err := export.WriteZip(units, zipName, s.opts)
	if err != nil {
		return Outcome{}, &ExportError{Err: err}
	}

	for _, name := range result.Names {
		fmt.Println(SuccessStyle.Render("Saved: " + name))
	}
	if result.Skipped > 0 {
		fmt.Println(WarningStyle.Render(fmt.Sprintf("Skipped %d conversations with no messages", result.Skipped)))
	}
	fmt.Printf("Exported %d results to %s\n", result.Written, result.Path)
	return Outcome{Kind: OutcomeArchived, Message: "Export completed successfully"}, nil
}

// nowEpoch returns the current time as epoch seconds for archive names.
func nowEpoch() float64 {
	return float64(time.Now().Unix())
}
