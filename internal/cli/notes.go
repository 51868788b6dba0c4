package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/notequery"
)

const timeLayout = "2006-01-02 15:04"

// List prints the user's notes, filtered by the current search and ordered
// by the current sort mode. A mode given as argument becomes the current one.
func (a *App) List(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		mode, err := notequery.ParseSortMode(args[0])
		if err != nil {
			return err
		}
		a.sortMode = mode
	}

	notes, err := a.store.ListNotes(ctx, u.Email)
	if err != nil {
		return err
	}
	view := a.sorter.Apply(notes, a.query, a.sortMode)

	switch {
	case len(view) == 0 && a.query != "":
		fmt.Fprintf(a.out, "No notes match %q\n", a.query)
	case len(view) == 0:
		fmt.Fprintln(a.out, "No notes yet, type 'new' to create one")
	}
	for _, n := range view {
		fmt.Fprintln(a.out, formatOverview(n))
	}
	return nil
}

// Search sets the text filter and lists the result. Without arguments the
// filter is cleared.
func (a *App) Search(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	a.query = strings.Join(args, " ")
	return a.List(ctx, nil)
}

// Sort prints the available modes, or sets the mode and lists.
func (a *App) Sort(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if len(args) == 0 {
		modes := make([]string, 0, len(notequery.Modes))
		for _, m := range notequery.Modes {
			modes = append(modes, string(m))
		}
		fmt.Fprintf(a.out, "Sort mode: %s (available: %s)\n", a.sortMode, strings.Join(modes, ", "))
		return nil
	}
	return a.List(ctx, args)
}

// New runs the editor for a fresh note.
func (a *App) New(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter note text", a.out)
	if err != nil {
		return err
	}
	in := models.NoteInput{Title: title, Body: body}
	// Checked before the photo is copied so a rejected note leaves no file behind.
	if err := in.Validate(); err != nil {
		return err
	}

	photo, err := getSimpleText(a.reader, "Photo path (empty for none)", a.out)
	if err != nil {
		return err
	}
	if in.ImageURI, err = a.attachPhoto(photo); err != nil {
		return err
	}

	n, err := a.store.CreateNote(ctx, u.Email, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created note %s\n", n.ID)
	return nil
}

// Edit changes an existing note. Empty answers keep the current value; "-"
// as photo path removes the photo. Changes are saved only after confirmation.
func (a *App) Edit(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	id, err := a.noteID(args, "Enter note id to edit")
	if err != nil {
		return err
	}
	cur, err := a.store.GetNote(ctx, u.Email, id)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", cur.Title), a.out)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter new note text (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	in := models.NoteInput{Title: cur.Title, Body: cur.Body, ImageURI: cur.ImageURI}
	if title != "" {
		in.Title = title
	}
	if body != "" {
		in.Body = body
	}

	photo, err := getSimpleText(a.reader, "Photo path (empty keeps, '-' removes)", a.out)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, "Save changes?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	switch photo {
	case "":
	case "-":
		in.ImageURI = nil
	default:
		if in.ImageURI, err = a.attachPhoto(photo); err != nil {
			return err
		}
	}

	n, err := a.store.UpdateNote(ctx, u.Email, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved note %s\n", n.ID)
	return nil
}

// Show prints one note in full.
func (a *App) Show(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	id, err := a.noteID(args, "Enter note id to show")
	if err != nil {
		return err
	}
	n, err := a.store.GetNote(ctx, u.Email, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, n.Title)
	fmt.Fprintln(a.out, strings.Repeat("-", len([]rune(n.Title))))
	fmt.Fprintln(a.out, n.Body)
	if n.HasImage() {
		fmt.Fprintf(a.out, "Photo: %s\n", *n.ImageURI)
	}
	fmt.Fprintf(a.out, "Created: %s  Updated: %s\n",
		n.CreatedAt.Time().Local().Format(timeLayout),
		n.UpdatedAt.Time().Local().Format(timeLayout))
	return nil
}

// Delete removes a note after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	id, err := a.noteID(args, "Enter note id to delete")
	if err != nil {
		return err
	}
	n, err := a.store.GetNote(ctx, u.Email, id)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q?", n.Title), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	if err := a.store.DeleteNote(ctx, u.Email, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) noteID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// attachPhoto copies the file at path into the image directory and returns
// its file:// URI. An empty path means no photo.
func (a *App) attachPhoto(path string) (*string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	dir, err := filex.EnsureDir(a.imageDir)
	if err != nil {
		return nil, fmt.Errorf("attach photo: %w", err)
	}
	dst, err := filex.CopyInto(path, dir, a.newImageName())
	if err != nil {
		return nil, fmt.Errorf("attach photo: %w", err)
	}
	uri := filex.FileURI(dst)
	return &uri, nil
}

func formatOverview(n models.Note) string {
	title := n.Title
	if n.HasImage() {
		title += " [photo]"
	}
	return fmt.Sprintf("%s  %s  %s", n.ID, n.UpdatedAt.Time().Local().Format(timeLayout), title)
}
