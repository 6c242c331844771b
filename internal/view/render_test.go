package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petjobs-engine/internal/domain"
)

func render(t *testing.T, p Page) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func samplePage(s PanelState) Page {
	return Page{
		Requests: []domain.JobRequest{{
			ID:          "r1",
			Job:         "Dog Walk (30 min)",
			Date:        "2026-08-09",
			Location:    "Vancouver, BC",
			Details:     "Please bring my pet Howdy for a walk, thank you!",
			TimeSlot:    "1PM - 3PM",
			SubmittedAt: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
		}, {
			ID:       "r2",
			Job:      "Dog Wash (1 hr)",
			Date:     "2026-10-18",
			Location: "Burnaby, BC",
			TimeSlot: "3PM - 5PM",
		}},
		Catalog: domain.DefaultCatalog(),
		State:   s,
		Layout:  LayoutFor(s),
		Year:    2026,
	}
}

func TestRender_Collapsed(t *testing.T) {
	doc := render(t, samplePage(Collapsed))

	assert.Equal(t, "collapsed", doc.Find("#app").AttrOr("data-state", ""))
	assert.Equal(t, 0, doc.Find("#panel-toggle").Length())
	assert.Equal(t, 1, doc.Find("#new-request").Length())
	assert.Equal(t, WidthFull, doc.Find("#request-list").AttrOr("data-width", ""))
	assert.True(t, doc.Find("#request-panel").HasClass("translate-x-full"))
	assert.Equal(t, 0, doc.Find("#notice").Length())

	items := doc.Find(".job-request")
	require.Equal(t, 2, items.Length())

	first := items.First()
	assert.Equal(t, "r1", first.AttrOr("data-id", ""))
	assert.Equal(t, "Dog Walk (30 min)", first.Find(".job").Text())
	assert.Equal(t, "3/4/2026", first.Find(".submitted").Text())
	assert.Equal(t, "Sunday, August 9, 2026", first.Find(".date").Text())
	assert.Equal(t, "Vancouver, BC", first.Find(".location").Text())
	assert.Equal(t, "1PM - 3PM", first.Find(".time-slot").Text())
	assert.Contains(t, first.Find(".details").Text(), "Howdy")
	assert.Equal(t, "/actions/delete/r1", first.Find("form").AttrOr("action", ""))

	assert.Equal(t, 0, items.Eq(1).Find(".details").Length(), "empty details are not rendered")
	assert.Contains(t, doc.Find("footer").Text(), "2026 Pet Service Request System - All rights reserved.")
}

func TestRender_FormOpen(t *testing.T) {
	p := samplePage(PanelOpenWithForm)
	p.Draft = domain.Draft{Job: "Dog Wash (1 hr)", Date: "2026-08-09", Details: "gentle", TimeSlot: "9AM - 11AM"}
	doc := render(t, p)

	assert.Equal(t, 1, doc.Find("#panel-toggle").Length())
	assert.Equal(t, 0, doc.Find("#new-request").Length())
	assert.Equal(t, WidthHalf, doc.Find("#request-list").AttrOr("data-width", ""))
	assert.True(t, doc.Find("#request-panel").HasClass("translate-x-0"))

	form := doc.Find("#request-form")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "Dog Wash (1 hr)", form.Find("select[name=job] option[selected]").AttrOr("value", ""))
	assert.Equal(t, 8, form.Find("select[name=job] option").Length())
	assert.Equal(t, "2026-08-09", form.Find("input[name=date]").AttrOr("value", ""))
	assert.Equal(t, "", form.Find("input[name=location]").AttrOr("value", "x"))
	assert.Equal(t, "gentle", form.Find("textarea[name=details]").Text())
	assert.Equal(t, 3, form.Find("input[name=timeSlot]").Length())
	assert.Equal(t, "9AM - 11AM", form.Find("input[name=timeSlot][checked]").AttrOr("value", ""))
	assert.Equal(t, "/actions/cancel", form.Find("#cancel-request").AttrOr("formaction", ""))
}

func TestRender_PromptState(t *testing.T) {
	doc := render(t, samplePage(PanelOpenNoForm))

	assert.Equal(t, 1, doc.Find("#panel-prompt").Length())
	assert.Equal(t, 0, doc.Find("#request-form").Length())
	assert.Equal(t, 1, doc.Find("#panel-toggle").Length())
}

func TestRender_EmptyListAndNotice(t *testing.T) {
	p := samplePage(PanelOpenWithForm)
	p.Requests = nil
	p.Notice = domain.MissingFieldsMessage
	doc := render(t, p)

	assert.Contains(t, doc.Find("#empty-list").Text(), "No job requests yet")
	assert.Equal(t, domain.MissingFieldsMessage, doc.Find("#notice").Text())
	assert.Contains(t, doc.Find("script").Text(), `alert("Please fill in all required fields")`)
}

func TestRender_EscapesUserInput(t *testing.T) {
	p := samplePage(Collapsed)
	p.Requests[0].Location = `<script>alert(1)</script>`

	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))

	assert.NotContains(t, buf.String(), `<script>alert(1)</script>`)
	assert.Contains(t, buf.String(), `&lt;script&gt;`)
}
