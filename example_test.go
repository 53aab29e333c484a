package folio_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/pkg/document"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/ports"
)

// ExampleNew shows a document going from an empty model to the saved history.
func ExampleNew() {
	notifier := ports.NotifierFunc(func(_ context.Context, n domain.Notification) {
		fmt.Printf("[%s] %s\n", n.Level, n.Message)
	})
	app, err := folio.New(folio.WithNotifier(notifier))
	if err != nil {
		log.Fatal(err)
	}

	lob, _ := app.Catalog().LOB("business_lending")
	letter, _ := app.Catalog().Template("business-letter")

	doc := app.NewDocument()
	doc.Apply(
		document.SelectLOB{LOB: &lob},
		document.SelectTemplate{Template: &letter},
		document.UpdateCommon{Patch: domain.CommonFieldsPatch{Subject: ptr("Credit line renewal")}},
	)
	fmt.Println(doc.Phase(), doc.RichBody())

	ctx := context.Background()
	if _, err := app.Save(ctx, doc); err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(app.Documents(ctx)), "saved")

	// Output:
	// template_selected <p>Start writing your document...</p>
	// [success] Document "Credit line renewal" saved!
	// 1 saved
}

func ptr[T any](v T) *T { return &v }
