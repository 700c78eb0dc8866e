package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"postdeck/internal/models"
	"postdeck/internal/transfer"
)

func (a *App) cmdProjects(args []string) error {
	if len(args) == 0 {
		return a.projectsList()
	}
	switch args[0] {
	case "list":
		return a.projectsList()
	case "create":
		return a.projectsCreate(args[1:])
	case "use":
		return a.projectsUse(args[1:])
	default:
		return fmt.Errorf("unknown projects subcommand: %s", args[0])
	}
}

func (a *App) projectsList() error {
	seq := a.projectStore.Begin()
	projects, err := a.projects.List(context.Background())
	if err != nil {
		a.projectStore.Fail(seq, err)
		return err
	}
	a.projectStore.ApplyList(seq, projects)

	current := a.loadCurrentProjectID()
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tINDUSTRY\tTIMEZONE")
	for _, p := range a.projectStore.Projects() {
		marker := ""
		if p.ID == current {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", p.ID, marker, p.Name, p.Industry, p.Timezone)
	}
	return w.Flush()
}

func (a *App) projectsCreate(args []string) error {
	fs := flag.NewFlagSet("projects create", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	name := fs.String("name", "", "project name")
	description := fs.String("description", "", "short description")
	industry := fs.String("industry", "", "industry tag")
	timezone := fs.String("timezone", "America/New_York", "IANA timezone")
	logoURL := fs.String("logo", "", "logo reference")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seq := a.projectStore.Begin()
	project, err := a.projects.Create(context.Background(), &transfer.ProjectCreation{
		Name:        *name,
		Description: *description,
		Industry:    *industry,
		Timezone:    *timezone,
		LogoURL:     *logoURL,
	})
	if err != nil {
		a.projectStore.Fail(seq, err)
		return err
	}
	a.projectStore.ApplyCreate(seq, project)

	if err := a.saveCurrentProjectID(project.ID); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "created project %s (%s), now selected\n", project.Name, project.ID)
	return nil
}

func (a *App) projectsUse(args []string) error {
	if len(args) == 0 {
		return errors.New("projects use needs a project id")
	}
	id := args[0]

	project, err := a.requireProject(id)
	if err != nil {
		return err
	}
	a.projectStore.SetCurrent(project)
	if err := a.saveCurrentProjectID(project.ID); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "using project %s (%s)\n", project.Name, project.ID)
	return nil
}

// requireProject resolves a project id (or the persisted selection when
// id is empty) against a fresh server listing.
func (a *App) requireProject(id string) (*models.Project, error) {
	if id == "" {
		id = a.loadCurrentProjectID()
	}
	if id == "" {
		return nil, errors.New("no project selected. Run `postdeck projects use <id>`")
	}

	seq := a.projectStore.Begin()
	projects, err := a.projects.List(context.Background())
	if err != nil {
		a.projectStore.Fail(seq, err)
		return nil, err
	}
	a.projectStore.ApplyList(seq, projects)

	project, ok := a.projectStore.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("project %s not found", id)
	}
	a.projectStore.SetCurrent(project)
	return project, nil
}
