package urls

// DirectoryEndpoint is the default country directory API. It answers GET with
// the country list envelope decoded by the directory package.
const DirectoryEndpoint = "https://countriesnow.space/api/v0.1/countries/capital"

// ProjectHome is shown in the terminal UI header.
const ProjectHome = "github.com/muurk/countryfinder"
