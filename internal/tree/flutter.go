package tree

// FlutterRoot is the root folder of the built-in layout.
const FlutterRoot = "lib"

// Flutter returns the built-in Flutter client skeleton.
func Flutter() Root {
	return New(FlutterRoot,
		File("main.dart"),
		Folder("controllers"),
		Folder("data",
			Folder("models"),
			Folder("services"),
		),
		Folder("utils",
			File("bindings.dart"),
			File("constants.dart"),
			File("helpers.dart"),
			File("validators.dart"),
		),
		Folder("presentation",
			Folder("screens",
				Folder("auth",
					File("login_screen.dart"),
					File("signup_screen.dart"),
				),
			),
			Folder("widgets"),
		),
	)
}
