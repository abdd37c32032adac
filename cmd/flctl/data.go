package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/filinglens/filinglens/pkg/contenthash"
)

// newTable returns a tabwriter configured for aligned CLI output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}

func fmtTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CompaniesCmd inspects companies.
type CompaniesCmd struct {
	List CompaniesListCmd `cmd:"" default:"withargs" help:"List companies."`
	Get  CompaniesGetCmd  `cmd:"" help:"Show one company."`
}

// CompaniesListCmd lists companies.
type CompaniesListCmd struct {
	Limit int `help:"Maximum rows." default:"100"`
}

func (c *CompaniesListCmd) Run(app *appCtx) error {
	companies, err := app.companies.List(app.ctx, c.Limit)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(companies)
	}

	w := newTable()
	fmt.Fprintln(w, "TICKER\tNAME\tINDUSTRY\tCREATED")
	for _, c := range companies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Ticker, c.Name, c.IndustryCode, fmtTime(c.CreatedAt))
	}
	return w.Flush()
}

// CompaniesGetCmd shows one company by ticker.
type CompaniesGetCmd struct {
	Ticker string `required:"" help:"Company ticker."`
}

func (c *CompaniesGetCmd) Run(app *appCtx) error {
	company, err := app.companies.GetByTicker(app.ctx, c.Ticker)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(company)
	}

	w := newTable()
	fmt.Fprintln(w, "TICKER\tNAME\tINDUSTRY\tFISCAL_YEAR_END\tCREATED")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		company.Ticker, company.Name, company.IndustryCode, deref(company.FiscalYearEnd), fmtTime(company.CreatedAt))
	return w.Flush()
}

// FilingsCmd inspects filings.
type FilingsCmd struct {
	List FilingsListCmd `cmd:"" default:"withargs" help:"List filings for a company."`
	Get  FilingsGetCmd  `cmd:"" help:"Show one filing."`
}

// FilingsListCmd lists a company's filings.
type FilingsListCmd struct {
	Ticker string `required:"" help:"Company ticker."`
	Form   string `help:"Filter by form type, e.g. 10-K."`
	Limit  int    `help:"Maximum rows." default:"100"`
}

func (c *FilingsListCmd) Run(app *appCtx) error {
	company, err := app.companies.GetByTicker(app.ctx, c.Ticker)
	if err != nil {
		return err
	}
	filings, err := app.filings.ListByCompany(app.ctx, company.ID, c.Form, c.Limit)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(filings)
	}

	w := newTable()
	fmt.Fprintln(w, "ACCESSION\tFORM\tFILED\tSOURCE")
	for _, f := range filings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.AccessionNumber, f.FormType, fmtDate(f.FilingDate), f.SourceURL)
	}
	return w.Flush()
}

// FilingsGetCmd shows one filing by accession number.
type FilingsGetCmd struct {
	Accession string `required:"" help:"Filing accession number."`
}

func (c *FilingsGetCmd) Run(app *appCtx) error {
	filing, err := app.filings.GetByAccession(app.ctx, c.Accession)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(filing)
	}

	w := newTable()
	fmt.Fprintln(w, "ACCESSION\tFORM\tFILED\tPERIOD\tSOURCE")
	period := ""
	if filing.PeriodOfReport != nil {
		period = fmtDate(*filing.PeriodOfReport)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		filing.AccessionNumber, filing.FormType, fmtDate(filing.FilingDate), period, filing.SourceURL)
	return w.Flush()
}

// DocumentsCmd inspects filing documents.
type DocumentsCmd struct {
	List DocumentsListCmd `cmd:"" default:"withargs" help:"List documents of a filing."`
	Show DocumentsShowCmd `cmd:"" help:"Print a document's content."`
}

// DocumentsListCmd lists the documents of a filing.
type DocumentsListCmd struct {
	Accession string `required:"" help:"Filing accession number."`
}

func (c *DocumentsListCmd) Run(app *appCtx) error {
	filing, err := app.filings.GetByAccession(app.ctx, c.Accession)
	if err != nil {
		return err
	}
	docs, err := app.filings.ListDocuments(app.ctx, filing.ID)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(docs)
	}

	w := newTable()
	fmt.Fprintln(w, "TYPE\tTITLE\tHASH\tCREATED")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.DocumentType, d.Title, contenthash.Short(d.ContentHash), fmtTime(d.CreatedAt))
	}
	return w.Flush()
}

// DocumentsShowCmd prints one document's full content.
type DocumentsShowCmd struct {
	Hash string `required:"" help:"Document content hash (full or prefix)."`
}

func (c *DocumentsShowCmd) Run(app *appCtx) error {
	doc, err := app.filings.DocumentByHash(app.ctx, c.Hash)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(doc)
	}
	fmt.Println(doc.Content)
	return nil
}

// FinancialsCmd inspects financial values and concepts.
type FinancialsCmd struct {
	List         FinancialsListCmd         `cmd:"" default:"withargs" help:"List financial values for a company."`
	ListConcepts FinancialsListConceptsCmd `cmd:"" help:"List financial concepts."`
	GetConcept   FinancialsGetConceptCmd   `cmd:"" help:"Show one concept by name."`
}

// FinancialsListCmd lists a company's financial values.
type FinancialsListCmd struct {
	Ticker  string `required:"" help:"Company ticker."`
	Concept string `help:"Filter by concept name."`
	Limit   int    `help:"Maximum rows." default:"100"`
}

func (c *FinancialsListCmd) Run(app *appCtx) error {
	company, err := app.companies.GetByTicker(app.ctx, c.Ticker)
	if err != nil {
		return err
	}
	values, err := app.financials.ListValues(app.ctx, company.ID, c.Concept, c.Limit)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(values)
	}

	w := newTable()
	fmt.Fprintln(w, "CONCEPT\tDATE\tVALUE")
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.ConceptID, fmtDate(v.ValueDate), v.Value.String())
	}
	return w.Flush()
}

// FinancialsListConceptsCmd lists all financial concepts.
type FinancialsListConceptsCmd struct{}

func (c *FinancialsListConceptsCmd) Run(app *appCtx) error {
	concepts, err := app.financials.ListConcepts(app.ctx)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(concepts)
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tLABELS\tDESCRIPTION")
	for _, c := range concepts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, strings.Join(c.Labels, ","), c.Description)
	}
	return w.Flush()
}

// FinancialsGetConceptCmd shows one concept by name.
type FinancialsGetConceptCmd struct {
	Name string `required:"" help:"Concept name, e.g. Revenues."`
}

func (c *FinancialsGetConceptCmd) Run(app *appCtx) error {
	concept, err := app.financials.GetConcept(app.ctx, c.Name)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(concept)
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tLABELS\tDESCRIPTION")
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		concept.Name, strings.Join(concept.Labels, ","), concept.Description)
	return w.Flush()
}

// PromptsCmd manages prompts.
type PromptsCmd struct {
	List   PromptsListCmd   `cmd:"" default:"withargs" help:"List prompts."`
	Ensure PromptsEnsureCmd `cmd:"" help:"Upsert a prompt from a directory."`
	Show   PromptsShowCmd   `cmd:"" help:"Print a prompt by hash."`
}

// PromptsListCmd lists prompts.
type PromptsListCmd struct {
	Limit int `help:"Maximum rows." default:"100"`
}

func (c *PromptsListCmd) Run(app *appCtx) error {
	prompts, err := app.prompts.List(app.ctx, c.Limit)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(prompts)
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tROLE\tHASH\tCREATED")
	for _, p := range prompts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Role, contenthash.Short(p.ContentHash), fmtTime(p.CreatedAt))
	}
	return w.Flush()
}

// PromptsEnsureCmd upserts a prompt from a prompt directory.
type PromptsEnsureCmd struct {
	Name string `required:"" help:"Prompt name."`
	Dir  string `required:"" type:"path" help:"Prompt directory ({dir}/prompt.md plus optional examples/)."`
}

func (c *PromptsEnsureCmd) Run(app *appCtx) error {
	p, err := app.prompts.EnsurePromptFromDir(app.ctx, c.Name, c.Dir)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(p)
	}
	fmt.Printf("%s %s\n", p.Name, p.ContentHash)
	return nil
}

// PromptsShowCmd prints a prompt by content hash.
type PromptsShowCmd struct {
	Hash string `required:"" help:"Prompt content hash (full or prefix)."`
}

func (c *PromptsShowCmd) Run(app *appCtx) error {
	p, err := app.prompts.ByHash(app.ctx, c.Hash)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(p)
	}
	fmt.Println(p.Content)
	return nil
}

// ContentCmd inspects generated content.
type ContentCmd struct {
	List ContentListCmd `cmd:"" default:"withargs" help:"List a company's generated content."`
	Show ContentShowCmd `cmd:"" help:"Print generated content by hash."`
}

// ContentListCmd lists a company's artifacts.
type ContentListCmd struct {
	Ticker string `required:"" help:"Company ticker."`
	Stage  string `help:"Filter by content stage."`
	Limit  int    `help:"Maximum rows." default:"100"`
}

func (c *ContentListCmd) Run(app *appCtx) error {
	company, err := app.companies.GetByTicker(app.ctx, c.Ticker)
	if err != nil {
		return err
	}
	contents, err := app.contents.ListByCompany(app.ctx, company.ID, c.Stage, c.Limit)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(contents)
	}

	w := newTable()
	fmt.Fprintln(w, "HASH\tSTAGE\tFORM\tDOC_TYPE\tCREATED")
	for _, gc := range contents {
		form := deref(gc.FormType)
		docType := ""
		if gc.DocumentType != nil {
			docType = string(*gc.DocumentType)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			contenthash.Short(gc.ContentHash), gc.ContentStage, form, docType, fmtTime(gc.CreatedAt))
	}
	return w.Flush()
}

// ContentShowCmd prints one artifact's content.
type ContentShowCmd struct {
	Hash string `required:"" help:"Content hash (full or prefix)."`
}

func (c *ContentShowCmd) Run(app *appCtx) error {
	gc, err := app.contents.ByHash(app.ctx, c.Hash)
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(gc)
	}
	fmt.Println(gc.Content)
	return nil
}
