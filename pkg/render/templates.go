package render

func letterHeader(b *Builder) {
	b.Heading(1, orDefault(b.Snapshot.Common.Subject, "[Subject Placeholder]"))
	if r := b.Snapshot.Common.RecipientName; r != "" {
		b.Meta("To: " + r)
	}
	b.Meta("Date: " + b.Now.Format("January 2, 2006"))
	b.Rule()
}

func renderLetter(b *Builder) {
	letterHeader(b)
	b.Body()
}

func renderPOARevocation(b *Builder) {
	b.Heading(1, "REVOCATION OF POWER OF ATTORNEY")
	b.Paragraph("I, " + b.Value("declarantName", "[Declarant Name]") +
		", Declarant, having executed a General Durable Power of Attorney on the date " +
		b.Date("poaExecutionDate") + ", naming " + b.Value("agentName", "[Agent Name]") +
		" my attorney-in-fact/agent, do hereby revoke that Power of Attorney pursuant to its" +
		" explicit provision that it may be revoked by me by written instrument signed by me" +
		" and delivered to my attorney-in-fact/Agent.")
	b.Paragraph("This is my written revocation of the above referenced General Durable Power of" +
		" Attorney and I am providing a copy of it to my attorney-in-fact/Agent.")
	b.Paragraph("Signed this date " + b.Date("revocationDate"))
	b.Meta("(Principal's Signature)")
	b.Paragraph("_______________________________")
	b.Meta("(Principal's Social Security Number)")
	b.Paragraph(b.Value("principalSSN", "[XXX-XX-XXXX]"))
	b.Paragraph("The principal is personally known to me and I believe the principal to be of sound" +
		" mind. I am eighteen (18) years of age or older. I am not related to the principal by blood" +
		" or marriage, or related to the attorney-in-fact by blood or marriage.")
	b.Meta("Witness:")
	b.Paragraph("_______________________________")
}

func renderLoanOffer(b *Builder) {
	letterHeader(b)
	b.Heading(2, "Offer Terms")
	b.Fields()
	b.Rule()
	b.Body()
}

func renderAccountUpdate(b *Builder) {
	letterHeader(b)
	b.Paragraph("Dear " + orDefault(b.Snapshot.Common.RecipientName, "Customer") + ",")
	b.Paragraph("We have updated the following details on your account:")
	b.Fields()
	b.Body()
}

func renderEmploymentApplication(b *Builder) {
	b.Heading(1, "APPLICATION FOR EMPLOYMENT")
	b.Meta("Locally Employed Staff or Family Member")
	b.Rule()
	b.Fields()
}

func renderGeneric(b *Builder) {
	b.Heading(1, b.Snapshot.Title())
	b.Fields()
	b.Body()
}
