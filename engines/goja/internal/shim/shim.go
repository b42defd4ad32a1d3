// Package shim holds the script-text assets evaluated into the execution
// scope around the bundled compiler. They are static strings: building them
// performs no I/O and cannot fail.
package shim

// Browser defines minimal stand-ins for the browser global object graph the
// compiler was authored against. The stand-ins only need to satisfy the
// compiler's reference checks: element lookups return empty sequences, and
// setInterval invokes its callback synchronously once with null and returns
// a handle of zero.
const Browser = `var window = {
  location: {
    protocol: 'file',
    href: 'localhost',
    port: '80'
  },
  document: {
    getElementById: function (id) {
      return [];
    },
    getElementsByTagName: function (name) {
      return [];
    }
  },
  setInterval: function (cb, interval) {
    cb.call(this, null);
    return 0;
  }
};
var location    = window.location;
var document    = window.document;
var setInterval = window.setInterval;
`

// ImporterInstaller attaches the import bridge onto the compiler's parser
// configuration namespace. It must be evaluated after the compiler itself.
// The env argument is the options object the entry point constructs, which
// carries the root source under the rootfile key. Resolution failures throw
// out of resolveImport and fail the whole parse; the error slot of the
// continuation is never used.
const ImporterInstaller = `window.less.Parser.importer = function (path2import, paths, fn, env) {
  var imported = env.rootfile.resolveImport(path2import);
  var ast = imported.getAST();
  var source = imported.getSource();
  fn(null, ast, String(source));
};
`

// EntryPoint is a function expression taking one bound source object. It
// constructs a parser configured with the source's filename and a rootfile
// back-reference for the import bridge, feeds it the source text, and
// captures the callback's result. The compiler invokes its callback before
// parse returns (there is no real asynchrony in this embedding), so the
// captured result is available synchronously; a reported error is re-raised.
const EntryPoint = `(function (lessfile) {
  var result;
  new (window.less.Parser)({ filename: String(lessfile.getFilename()), rootfile: lessfile })
    .parse(String(lessfile.getSource()), function (err, ast) {
      if (err) throw err;
      result = ast;
    });
  return result;
})
`
