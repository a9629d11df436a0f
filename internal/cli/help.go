package cli

import "fmt"

func (c *CLI) printHelp(command string) {
	if command == "" {
		fmt.Println("Available commands:")
		for _, cmd := range commandOrder {
			fmt.Printf("  %s\n", cmd)
		}
		fmt.Println("\nUse 'help <command>' for more information about a specific command.")
	} else if help, ok := commandHelp[command]; ok {
		fmt.Println(help)
	} else {
		fmt.Printf("Unknown command: %s\n", command)
	}
}

var commandOrder = []string{
	"login", "logout", "user", "album", "photo", "tag", "search", "save", "help", "exit",
}

// commandHelp contains help text for each command.
var commandHelp = map[string]string{
	"login": `Syntax: login [username] [password]
Description: Logs in to the library. Prompts for missing credentials; the
password prompt does not echo. The 'stock' account has an empty password.
Example: login stock`,

	"logout": `Syntax: logout
Description: Saves the library and ends the current session.`,

	"user": `Syntax: user <list|add|del> [args]
Description: Manages accounts. Only available to the admin user.
- user list: Lists every account with its album count.
- user add <username> [password]: Creates an account.
- user del <username>: Deletes an account and all its albums. The admin
  account itself cannot be deleted.
Example: user add alice hunter2`,

	"album": `Syntax: album <list|add|del|rename|open|close> [args]
Description: Manages the logged-in user's albums.
- album list: Lists albums with photo counts and date ranges.
- album add <name>: Creates an empty album. Names are unique per user.
- album del <name>: Deletes an album and its photos.
- album rename <name> <new name>: Renames an album.
- album open <name> / album close: Selects the album photo commands act on.
Example: album add "summer 2024"`,

	"photo": `Syntax: photo <list|add|del|caption|copy|move> [args]
Description: Manages photos in the open album. Positions are the numbers
shown by 'photo list'.
- photo add <path> [caption]: Adds the image file at path; its modification
  date is taken from the file.
- photo del <position>: Removes the photo.
- photo caption <position> <caption>: Sets the caption.
- photo copy <position> <album>: Copies the photo into another album.
- photo move <position> <album>: Moves the photo into another album.
Example: photo add ./pics/beach.jpg "sunset at the beach"`,

	"tag": `Syntax: tag <list|add|del|presets> [args]
Description: Manages a photo's tags. Tags are name=value pairs; neither part
may contain '='. Preset names (location, people, mood, or ones you added)
decide whether a name may hold multiple values.
- tag list <position>: Lists the photo's tags.
- tag add <position> <name=value> [--multi]: Tags the photo. --multi lets a
  brand-new tag name hold multiple values.
- tag del <position> <name=value>: Removes the tag.
- tag presets: Lists your saved tag presets.
Example: tag add 2 people=sam`,

	"search": `Syntax: search date <start> <end> | search tag <name=value> [and|or <name=value>]
Description: Searches all of your albums. Dates use MM/DD/YYYY and both
bounds are exclusive. 'and' returns photos carrying both tags, 'or' photos
carrying either. Append --save-as <album> to copy the results into a new
album.
Example: search tag people=sam and mood=happy --save-as best`,

	"save": `Syntax: save
Description: Writes the library to the snapshot file immediately. The
library is also saved automatically after every change and at exit.`,

	"exit": `Syntax: exit
Description: Saves the library and exits the program.`,

	"quit": `Syntax: quit
Description: Saves the library and exits the program.`,

	"help": `Syntax: help [command]
Description: Shows the command list, or detailed help for one command.`,
}
