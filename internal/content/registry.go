package content

import "github.com/oluyale/portfolio/internal/pages"

// Block describes how one page is rendered.
type Block struct {
	Page     pages.ID
	Template string
	Heading  string
	Icon     string
}

// Registry maps every page to its block.
type Registry struct {
	blocks map[pages.ID]Block
}

// NewRegistry builds the registry for the known pages.
func NewRegistry() *Registry {
	return &Registry{blocks: map[pages.ID]Block{
		pages.Home:       {Page: pages.Home, Template: "page-home", Heading: "Hi, I'm", Icon: "👋"},
		pages.Skills:     {Page: pages.Skills, Template: "page-skills", Heading: "Skills", Icon: "🧠"},
		pages.Projects:   {Page: pages.Projects, Template: "page-projects", Heading: "Projects", Icon: "🚀"},
		pages.Experience: {Page: pages.Experience, Template: "page-experience", Heading: "Experience & Education", Icon: "📚"},
		pages.Contact:    {Page: pages.Contact, Template: "page-contact", Heading: "Contact", Icon: "📞"},
	}}
}

// Block returns the block for id, or the default page's block when id is unknown.
func (r *Registry) Block(id pages.ID) Block {
	if b, ok := r.blocks[id]; ok {
		return b
	}
	return r.blocks[pages.Default]
}

// Blocks returns every block in navigation order.
func (r *Registry) Blocks() []Block {
	out := make([]Block, 0, len(r.blocks))
	for _, id := range pages.All() {
		out = append(out, r.blocks[id])
	}
	return out
}
