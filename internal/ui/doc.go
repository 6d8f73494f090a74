// Package ui implements an interactive terminal client for the myFlix catalog using bubbletea's Elm architecture.
//
// Views:
//  1. [WelcomeView] : Choose between logging in and registering
//  2. [LoginView], [RegisterView] : Account forms
//  3. [MoviesView] : Browse the catalog, toggle favorites, open details
//  4. [DetailView] : Genre, director or synopsis of the selected movie
//  5. [ProfileView] : Account data and favorites
//  6. [EditView], [ConfirmDeleteView] : Update or delete the account
//
// The (view) [Model] implements Init/Update/View and receives gateway results through the Msg union type.
// Every API call runs as a [tea.Cmd]; results are applied in Update, so views never block on the network.
// A notification bar shows the outcome of each mutating call and dismisses itself after the configured interval.
package ui
