package vocab

// table is the embedded Luau word list, transcribed from the upstream
// vocabulary in its published order. A handful of names appear in more than
// one section; Load drops everything after the first occurrence.
var table = []Identifier{
	// language keywords
	{"and", Keyword}, {"break", Keyword}, {"do", Keyword}, {"else", Keyword},
	{"elseif", Keyword}, {"end", Keyword}, {"false", Keyword}, {"for", Keyword},
	{"function", Keyword}, {"goto", Keyword}, {"if", Keyword}, {"in", Keyword},
	{"local", Keyword}, {"nil", Keyword}, {"not", Keyword}, {"or", Keyword},
	{"repeat", Keyword}, {"return", Keyword}, {"then", Keyword}, {"true", Keyword},
	{"until", Keyword}, {"while", Keyword}, {"continue", Keyword},
	{"export", Keyword}, {"type", Keyword},
	{"::", Keyword}, // type cast / annotation operator

	// core globals (Lua compatible)
	{"_G", Constant}, {"_VERSION", Constant},
	{"assert", Function}, {"collectgarbage", Function}, {"dofile", Function},
	{"error", Function}, {"getmetatable", Function}, {"ipairs", Function},
	{"load", Function}, {"loadfile", Function}, {"loadstring", Function},
	{"next", Function}, {"pairs", Function}, {"pcall", Function},
	{"print", Function}, {"rawequal", Function}, {"rawget", Function},
	{"rawlen", Function}, {"rawset", Function}, {"require", Function},
	{"select", Function}, {"setmetatable", Function}, {"tonumber", Function},
	{"tostring", Function}, {"xpcall", Function},

	// coroutine library
	{"coroutine.create", Function}, {"coroutine.resume", Function},
	{"coroutine.running", Function}, {"coroutine.status", Function},
	{"coroutine.wrap", Function}, {"coroutine.yield", Function},

	// package library
	{"package.config", Constant}, {"package.cpath", Constant},
	{"package.path", Constant}, {"package.loaded", Other},
	{"package.loaders", Other}, {"package.searchers", Other},
	{"package.searchpath", Function}, {"package.preload", Other},
	{"package.loadlib", Function},

	// string library
	{"string.byte", Function}, {"string.char", Function}, {"string.dump", Function},
	{"string.find", Function}, {"string.format", Function}, {"string.gmatch", Function},
	{"string.gsub", Function}, {"string.len", Function}, {"string.lower", Function},
	{"string.match", Function}, {"string.rep", Function}, {"string.reverse", Function},
	{"string.sub", Function}, {"string.upper", Function},

	// table library
	{"table.concat", Function}, {"table.insert", Function}, {"table.move", Function},
	{"table.pack", Function}, {"table.remove", Function}, {"table.sort", Function},
	{"table.unpack", Function}, {"table.maxn", Function},

	// math library
	{"math.abs", Function}, {"math.acos", Function}, {"math.asin", Function},
	{"math.atan", Function}, {"math.atan2", Function}, {"math.ceil", Function},
	{"math.cos", Function}, {"math.cosh", Function}, {"math.deg", Function},
	{"math.exp", Function}, {"math.floor", Function}, {"math.fmod", Function},
	{"math.frexp", Function}, {"math.huge", Constant}, {"math.ldexp", Function},
	{"math.log", Function}, {"math.log10", Function}, {"math.max", Function},
	{"math.min", Function}, {"math.modf", Function}, {"math.pi", Constant},
	{"math.pow", Function}, {"math.rad", Function}, {"math.random", Function},
	{"math.randomseed", Function}, {"math.sin", Function}, {"math.sinh", Function},
	{"math.sqrt", Function}, {"math.tan", Function}, {"math.tanh", Function},

	// io library
	{"io.close", Function}, {"io.flush", Function}, {"io.input", Function},
	{"io.lines", Function}, {"io.open", Function}, {"io.output", Function},
	{"io.popen", Function}, {"io.read", Function}, {"io.tmpfile", Function},
	{"io.type", Function}, {"io.write", Function},

	// os library
	{"os.clock", Function}, {"os.date", Function}, {"os.difftime", Function},
	{"os.execute", Function}, {"os.exit", Function}, {"os.getenv", Function},
	{"os.remove", Function}, {"os.rename", Function}, {"os.time", Function},
	{"os.tmpname", Function},

	// debug library
	{"debug.debug", Function}, {"debug.gethook", Function}, {"debug.getinfo", Function},
	{"debug.getlocal", Function}, {"debug.getmetatable", Function},
	{"debug.getregistry", Function}, {"debug.getupvalue", Function},
	{"debug.sethook", Function}, {"debug.setlocal", Function},
	{"debug.setupvalue", Function}, {"debug.traceback", Function},

	// utf8 library
	{"utf8.char", Function}, {"utf8.charpattern", Constant}, {"utf8.codepoint", Function},
	{"utf8.codes", Function}, {"utf8.len", Function}, {"utf8.offset", Function},
	{"utf8.nfcnormalize", Function}, {"utf8.normalize", Function}, {"utf8.next", Function},

	// compat globals sometimes present
	{"unpack", Function}, {"module", Function}, {"package.loaders", Other},
	{"loadlib", Function}, {"bit32", Other}, {"bit32.band", Function},
	{"bit32.bnot", Function}, {"bit32.bor", Function}, {"bit32.bxor", Function},
	{"bit32.lshift", Function}, {"bit32.rshift", Function}, {"bit32.arshift", Function},
	{"bit32.extract", Function}, {"bit32.replace", Function}, {"bit32.test", Function},

	// Lua ecosystem helpers and deprecated names
	{"pairsByKeys", Function}, {"table.foreach", Function}, {"table.foreachi", Function},

	// Luau builtin helpers
	{"typeof", Function},

	// runtime level helpers
	{"warn", Function}, {"ipairs", Function}, {"pairs", Function}, {"next", Function},
	{"tick", Function}, {"time", Function}, {"os", Other}, {"wait", Function},
	{"spawn", Function}, {"delay", Function},
	{"setfenv", Function}, {"getfenv", Function},

	// Roblox globals and service names
	{"game", Other}, {"workspace", Other}, {"script", Other}, {"shared", Other},
	{"players", Other}, {"player", Other}, {"Players", Other},
	{"Instance", Other}, {"Instance.new", Function}, {"Enum", Other},
	{"CFrame", Other}, {"Vector3", Other}, {"UDim", Other}, {"UDim2", Other},
	{"BrickColor", Other}, {"Color3", Other}, {"Ray", Other}, {"Region3", Other},
	{"RaycastParams", Other}, {"PhysicalProperties", Other}, {"NumberSequence", Other},
	{"NumberSequenceKeypoint", Other}, {"ColorSequence", Other},
	{"ColorSequenceKeypoint", Other}, {"TweenInfo", Other},
	{"TweenService", Other}, {"RunService", Other}, {"UserInputService", Other},
	{"InputService", Other}, {"HttpService", Other}, {"MarketplaceService", Other},
	{"Debris", Other}, {"CollectionService", Other}, {"ReplicatedStorage", Other},
	{"ReplicatedFirst", Other}, {"StarterGui", Other}, {"StarterPack", Other},
	{"StarterPlayer", Other}, {"Lighting", Other}, {"SoundService", Other},
	{"TextService", Other}, {"PathfindingService", Other}, {"PhysicsService", Other},
	{"NetworkServer", Other}, {"NetworkClient", Other}, {"LocalizationService", Other},
	{"LogService", Other}, {"MemoryStoreService", Other}, {"MessagingService", Other},

	// Roblox convenience methods
	{"GetService", Function}, {"FindFirstChild", Function},
	{"FindFirstChildWhichIsA", Function}, {"FindFirstChildOfClass", Function},
	{"IsA", Function}, {"Connect", Function}, {"Wait", Function}, {"Clone", Function},
	{"Destroy", Function}, {"GetChildren", Function}, {"GetDescendants", Function},
	{"BindToClose", Function}, {"Kick", Function}, {"LoadAnimation", Function},
	{"Play", Function}, {"Stop", Function}, {"FireAllClients", Function},
	{"FireClient", Function}, {"FireServer", Function}, {"OnClientEvent", Other},
	{"OnServerEvent", Other}, {"InvokeClient", Function}, {"InvokeServer", Function},

	// type and reflection helpers
	{"table.freeze", Function}, {"table.isfrozen", Function}, {"table.clear", Function},

	// misc utilities common in Luau/Roblox code
	{"Promise", Other}, {"Signal", Other}, {"Task", Other},
	{"task.defer", Function}, {"task.delay", Function}, {"task.spawn", Function},
	{"task.wait", Function}, {"task.cancel", Function},
	{"HttpService:GetAsync", Function}, {"HttpService:PostAsync", Function},
	{"HttpService:RequestAsync", Function},
}
