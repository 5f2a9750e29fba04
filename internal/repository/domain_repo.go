package repository

import (
	"fmt"
	"sort"
)

// DefaultSectionDomains lists the official SAT domains for each section.
var DefaultSectionDomains = map[string][]string{
	"math": {
		"Algebra",
		"Problem-Solving and Data Analysis",
		"Advanced Math",
		"Geometry and Trigonometry",
	},
	"english": {
		"Information and Ideas",
		"Craft and Structure",
		"Expression of Ideas",
		"Standard English Conventions",
	},
}

type DomainRepository struct {
	SectionToDomains map[string][]string
	DomainToSection  map[string]string
}

// NewDomainRepository builds the catalog from sectionDomains, falling back to
// DefaultSectionDomains when it is empty. A domain may only belong to one section.
func NewDomainRepository(sectionDomains map[string][]string) (*DomainRepository, error) {
	if len(sectionDomains) == 0 {
		sectionDomains = DefaultSectionDomains
	}

	repo := &DomainRepository{
		SectionToDomains: make(map[string][]string, len(sectionDomains)),
		DomainToSection:  make(map[string]string),
	}
	for section, domains := range sectionDomains {
		for _, domain := range domains {
			if owner, exists := repo.DomainToSection[domain]; exists && owner != section {
				return nil, fmt.Errorf("领域 %q 同时属于分区 %q 和 %q", domain, owner, section)
			}
			repo.DomainToSection[domain] = section
		}
		repo.SectionToDomains[section] = append([]string(nil), domains...)
	}
	return repo, nil
}

func (r *DomainRepository) FindSectionByDomain(domain string) (string, bool) {
	section, ok := r.DomainToSection[domain]
	return section, ok
}

func (r *DomainRepository) FindDomainsBySection(section string) []string {
	return r.SectionToDomains[section]
}

func (r *DomainRepository) Sections() []string {
	sections := make([]string, 0, len(r.SectionToDomains))
	for section := range r.SectionToDomains {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections
}
