package manifest

// Template is the manifest written by "aastex init".
const Template = `# Paper manifest. Paths are relative to this file.
output: paper

title: Title of the Paper
short_title: Short Title

affiliations:
  inst: Department of Astronomy, Some University

authors:
  - name: First Author
    affiliation: inst
    email: first.author@example.org

acronyms:
  - acronym: AGN
    full: active galactic nucleus
    plural: true

variables:
  nsources: "42"

quantities:
  teff:
    value: 5772
    unit: K
    digits: 0

abstract: |
  We present \nsources{} sources with an effective temperature of \teff.

sections:
  - title: Introduction
    text: |
      Most galaxies host an \AGN.
  - title: Observations
    subsections:
      - title: Data Reduction
        text: The data were reduced as usual.
    # figures:
    #   - label: overview
    #     images:
    #       - figures/*.pdf
    #     caption: Overview of the observations.

bibliography: sources
`
