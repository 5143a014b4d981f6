package render

import "strconv"

// NodeKind identifies one node type in the on-screen view tree.
type NodeKind string

const (
	NodeDocument NodeKind = "document"
	NodeSection  NodeKind = "section"
	NodeHeading  NodeKind = "heading"
	NodeField    NodeKind = "field"
	NodeBadge    NodeKind = "badge"
	NodeList     NodeKind = "list"
	NodeListItem NodeKind = "list_item"
)

// Node is one element of the on-screen component tree. The tree is a direct
// structural mapping of the Projection and is serialized as-is for the UI.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Key      string   `json:"key,omitempty"`
	Label    string   `json:"label,omitempty"`
	Value    string   `json:"value,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

const (
	badgeVerified    = "Verified"
	badgeNotVerified = "Not Verified"
)

// Screen renders the projection as a view tree, one visual block per
// populated result key, in the fixed section order.
func Screen(p *Projection) *Node {
	doc := &Node{Kind: NodeDocument, Key: p.InquiryID, Label: p.Title}

	header := &Node{Kind: NodeSection, Key: "header", Label: p.Title}
	for _, f := range p.Header {
		header.Children = append(header.Children, fieldNode(f))
	}
	doc.Children = append(doc.Children, header)

	services := &Node{Kind: NodeSection, Key: "services", Label: "Requested Services"}
	list := &Node{Kind: NodeList}
	for _, svc := range p.Services {
		list.Children = append(list.Children, &Node{Kind: NodeListItem, Value: svc})
	}
	services.Children = append(services.Children, list)
	doc.Children = append(doc.Children, services)

	if len(p.AdditionalInfo) > 0 {
		info := &Node{Kind: NodeSection, Key: "additional_info", Label: "Additional Information"}
		for _, f := range p.AdditionalInfo {
			info.Children = append(info.Children, fieldNode(f))
		}
		doc.Children = append(doc.Children, info)
	}

	if p.Summary != nil {
		doc.Children = append(doc.Children, summaryNode(p.Summary))
	}

	for _, block := range p.Details {
		doc.Children = append(doc.Children, detailNode(block))
	}

	return doc
}

func fieldNode(f Field) *Node {
	return &Node{Kind: NodeField, Label: f.Label, Value: f.Value}
}

func summaryNode(s *SummarySection) *Node {
	section := &Node{Kind: NodeSection, Key: "summary", Label: "Summary"}
	section.Children = append(section.Children,
		&Node{Kind: NodeBadge, Label: "Overall Status", Value: s.OverallStatus},
		&Node{Kind: NodeField, Label: "Total Checks", Value: strconv.Itoa(s.TotalChecks)},
		&Node{Kind: NodeField, Label: "Passed", Value: strconv.Itoa(s.PassedChecks)},
		&Node{Kind: NodeField, Label: "Failed", Value: strconv.Itoa(s.FailedChecks)},
		&Node{Kind: NodeField, Label: "Pending", Value: strconv.Itoa(s.PendingChecks)},
	)
	return section
}

func detailNode(block DetailBlock) *Node {
	section := &Node{Kind: NodeSection, Key: block.Key, Label: block.Title}
	section.Children = append(section.Children, &Node{Kind: NodeBadge, Label: "Verification", Value: verifiedBadge(block.Verified)})
	for _, f := range block.Fields {
		section.Children = append(section.Children, fieldNode(f))
	}
	if len(block.Records) > 0 {
		records := &Node{Kind: NodeList, Key: "records", Label: "Records"}
		for _, rec := range block.Records {
			item := &Node{Kind: NodeListItem, Value: rec.Offense}
			if rec.Date != "" {
				item.Children = append(item.Children, &Node{Kind: NodeField, Label: "Date", Value: rec.Date})
			}
			item.Children = append(item.Children,
				&Node{Kind: NodeField, Label: "Disposition", Value: rec.Disposition},
				&Node{Kind: NodeField, Label: "Jurisdiction", Value: rec.Jurisdiction},
			)
			records.Children = append(records.Children, item)
		}
		section.Children = append(section.Children, records)
	}
	return section
}

func verifiedBadge(verified bool) string {
	if verified {
		return badgeVerified
	}
	return badgeNotVerified
}
