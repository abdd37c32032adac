package main

import (
	"fmt"

	"github.com/filinglens/filinglens/pkg/models"
)

// JobsCmd manages the job queue.
type JobsCmd struct {
	List         JobsListCmd         `cmd:"" default:"withargs" help:"List jobs."`
	Show         JobsShowCmd         `cmd:"" help:"Show one job."`
	Cancel       JobsCancelCmd       `cmd:"" help:"Cancel a pending job."`
	Requeue      JobsRequeueCmd      `cmd:"" help:"Reset failed jobs to pending."`
	CancelFailed JobsCancelFailedCmd `cmd:"" help:"Mark failed jobs as cancelled."`
	Stats        JobsStatsCmd        `cmd:"" help:"Show queue depth by status."`
}

// JobsListCmd lists jobs.
type JobsListCmd struct {
	Status  string `help:"Filter by status (pending, in_progress, completed, failed, cancelled)."`
	JobType string `name:"type" help:"Filter by job type."`
	Limit   int    `help:"Maximum rows." default:"50"`
}

func (c *JobsListCmd) Run(app *appCtx) error {
	jobs, err := app.jobs.ListJobs(app.ctx, models.JobListParams{
		Status:  c.Status,
		JobType: c.JobType,
		Limit:   c.Limit,
	})
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(jobs)
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tPRIO\tRETRIES\tWORKER\tCREATED")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d\t%s\t%s\n",
			j.ID, j.JobType, j.Status, j.Priority, j.RetryCount, j.MaxRetries,
			deref(j.WorkerID), fmtTime(j.CreatedAt))
	}
	return w.Flush()
}

// JobsShowCmd shows one job.
type JobsShowCmd struct {
	ID string `arg:"" help:"Job id."`
}

func (c *JobsShowCmd) Run(app *appCtx) error {
	j, err := app.jobs.GetJob(app.ctx, c.ID)
	if err != nil {
		return err
	}
	return app.printJSON(j)
}

// JobsCancelCmd cancels a pending job.
type JobsCancelCmd struct {
	ID string `arg:"" help:"Job id."`
}

func (c *JobsCancelCmd) Run(app *appCtx) error {
	j, err := app.jobs.Cancel(app.ctx, c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("cancelled %s\n", j.ID)
	return nil
}

// JobsRequeueCmd resets failed jobs to pending with a fresh retry budget.
type JobsRequeueCmd struct {
	Type string `help:"Only requeue this job type."`
}

func (c *JobsRequeueCmd) Run(app *appCtx) error {
	jobs, err := app.jobs.RequeueFailed(app.ctx, c.Type)
	if err != nil {
		return err
	}
	fmt.Printf("requeued %d jobs\n", len(jobs))
	return nil
}

// JobsCancelFailedCmd marks failed jobs as cancelled.
type JobsCancelFailedCmd struct {
	Type string `help:"Only cancel this job type."`
}

func (c *JobsCancelFailedCmd) Run(app *appCtx) error {
	n, err := app.jobs.CancelFailed(app.ctx, c.Type)
	if err != nil {
		return err
	}
	fmt.Printf("cancelled %d failed jobs\n", n)
	return nil
}

// JobsStatsCmd shows queue depth by status.
type JobsStatsCmd struct {
	Type string `help:"Filter by job type."`
}

func (c *JobsStatsCmd) Run(app *appCtx) error {
	counts, err := app.jobs.CountAllStatuses(app.ctx, c.Type)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(counts)
	}

	w := newTable()
	fmt.Fprintln(w, "STATUS\tCOUNT")
	for _, sc := range counts {
		fmt.Fprintf(w, "%s\t%d\n", sc.Status, sc.Count)
	}
	return w.Flush()
}

// RunsCmd inspects pipeline runs.
type RunsCmd struct {
	List RunsListCmd `cmd:"" default:"withargs" help:"List pipeline runs."`
	Show RunsShowCmd `cmd:"" help:"Show one run."`
}

// RunsListCmd lists pipeline runs.
type RunsListCmd struct {
	Status string `help:"Filter by status (pending, running, completed, failed)."`
	Limit  int    `help:"Maximum rows." default:"50"`
}

func (c *RunsListCmd) Run(app *appCtx) error {
	runs, err := app.runs.ListRuns(app.ctx, c.Status, c.Limit)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(runs)
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tSTATUS\tTRIGGER\tCREATED_JOBS\tCOMPLETED\tFAILED\tSTARTED")
	for _, r := range runs {
		started := ""
		if r.StartedAt != nil {
			started = fmtTime(*r.StartedAt)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID, r.Status, r.Trigger, r.JobsCreated, r.JobsCompleted, r.JobsFailed, started)
	}
	return w.Flush()
}

// RunsShowCmd shows one pipeline run.
type RunsShowCmd struct {
	ID string `arg:"" help:"Run id."`
}

func (c *RunsShowCmd) Run(app *appCtx) error {
	r, err := app.runs.GetRun(app.ctx, c.ID)
	if err != nil {
		return err
	}
	return app.printJSON(r)
}
