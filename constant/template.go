package constant

// Global functions a custom Lua source must (or may) define.
const (
	EpisodesFn = "Episodes"
	AudioURLFn = "AudioURL"
)

// SourceTemplate is a text/template for scaffolding new Lua sources.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias episode { title: string, audio_url: string|nil, listen_url: string|nil, published: string|nil, large_file: boolean|nil }


----- IMPORTS -----
local http = require("http")
local html = require("html")
--- END IMPORTS ---



----- VARIABLES -----
local program = "{{ .Name }}"
--- END VARIABLES ---



----- MAIN -----

--- Lists the most recent episodes of the program.
-- @param url string Listing URL configured for the program
-- @return episode[] Table of episodes, newest first
function {{ .EpisodesFn }}(url)
	return {}
end


--- Resolves the direct audio URL of an episode that only carries a listen_url.
-- @param episode episode
-- @return string Audio URL, or an empty string when nothing was found
function {{ .AudioURLFn }}(episode)
	return ""
end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
